package port

type TokenPayload struct {
	CustomerID uint64
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(customerID uint64) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
