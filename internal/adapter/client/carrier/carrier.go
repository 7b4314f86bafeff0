package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vinoteca/wineshop/internal/adapter/config"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"go.uber.org/zap"
)

// Client talks to the carrier provider: the shipping options feed consumed
// by checkout and parcel registration after payment confirmation.
type Client struct {
	host       string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.Carrier, log *zap.Logger) (*Client, error) {
	return &Client{
		host:       cfg.HostString,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     log,
	}, nil
}

// Wire types for the options feed. Optional fields are pointers so a
// degraded feed is distinguishable from explicit false/zero values.
type wireOptionsRequest struct {
	Country string         `json:"country"`
	Items   []wireFeedItem `json:"items"`
}

type wireFeedItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type wireCarrier struct {
	CarrierCode string       `json:"carrier_code"`
	CarrierName string       `json:"carrier_name"`
	Options     []wireOption `json:"options"`
}

type wireOption struct {
	Code              string   `json:"code"`
	Name              string   `json:"name"`
	PriceCents        int64    `json:"price_cents"`
	IsTracked         *bool    `json:"is_tracked,omitempty"`
	RequiresSignature *bool    `json:"requires_signature,omitempty"`
	IsExpress         *bool    `json:"is_express,omitempty"`
	InsuranceCents    *int64   `json:"insurance_cents,omitempty"`
	LastMile          *string  `json:"last_mile,omitempty"`
	Restrictions      []string `json:"restrictions,omitempty"`
}

func (c *Client) ShippingOptions(ctx context.Context, countryCode string, items []domain.LineItem) ([]domain.CarrierOptions, error) {
	reqBody := wireOptionsRequest{Country: countryCode}
	for _, item := range items {
		reqBody.Items = append(reqBody.Items, wireFeedItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	var feed []wireCarrier
	if err := c.post(ctx, "/api/v2/shipping-options", reqBody, &feed); err != nil {
		return nil, err
	}

	result := make([]domain.CarrierOptions, 0, len(feed))
	for _, wc := range feed {
		co := domain.CarrierOptions{
			CarrierCode: wc.CarrierCode,
			CarrierName: wc.CarrierName,
			Options:     make([]domain.ShippingOption, 0, len(wc.Options)),
		}
		for _, wo := range wc.Options {
			option, err := c.normalizeOption(wc, wo)
			if err != nil {
				c.logger.Warn("skipping malformed shipping option",
					zap.String("carrier", wc.CarrierCode), zap.String("option", wo.Code), zap.Error(err))
				continue
			}
			co.Options = append(co.Options, option)
		}
		result = append(result, co)
	}

	return result, nil
}

// normalizeOption maps one feed option onto the domain type, filling any
// omitted characteristic with the carrier-class default so callers never
// see a partially populated record.
func (c *Client) normalizeOption(wc wireCarrier, wo wireOption) (domain.ShippingOption, error) {
	price, err := domain.NewMoney(wo.PriceCents, domain.CurrencyEUR)
	if err != nil {
		return domain.ShippingOption{}, fmt.Errorf("option price: %w", err)
	}

	chars := defaultsFor(wc.CarrierCode, domain.CurrencyEUR)
	if wo.IsTracked != nil {
		chars.IsTracked = *wo.IsTracked
	}
	if wo.RequiresSignature != nil {
		chars.RequiresSignature = *wo.RequiresSignature
	}
	if wo.IsExpress != nil {
		chars.IsExpress = *wo.IsExpress
	}
	if wo.InsuranceCents != nil {
		insurance, err := domain.NewMoney(*wo.InsuranceCents, domain.CurrencyEUR)
		if err != nil {
			return domain.ShippingOption{}, fmt.Errorf("option insurance: %w", err)
		}
		chars.Insurance = insurance
	}
	if wo.LastMile != nil {
		switch domain.LastMile(*wo.LastMile) {
		case domain.LastMileServicePoint, domain.LastMileHomeDelivery:
			chars.LastMile = domain.LastMile(*wo.LastMile)
		}
	}
	if wo.Restrictions != nil {
		chars.Restrictions = wo.Restrictions
	}

	return domain.ShippingOption{
		Code:            wo.Code,
		Name:            wo.Name,
		CarrierCode:     wc.CarrierCode,
		CarrierName:     wc.CarrierName,
		Price:           price,
		Characteristics: chars,
	}, nil
}

type wireParcelRequest struct {
	OrderNumber string `json:"order_number"`
	Name        string `json:"name"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	OptionCode  string `json:"shipment_option"`
	Signature   bool   `json:"require_signature"`
}

type wireParcelResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
	Carrier        string `json:"carrier"`
}

// CreateParcel registers the shipment with the carrier. Called as the
// best-effort handoff after payment confirmation; the caller decides what
// a failure means.
func (c *Client) CreateParcel(ctx context.Context, order *domain.Order) (*domain.Parcel, error) {
	reqBody := wireParcelRequest{
		OrderNumber: order.Number,
		Name:        order.ShippingAddress.Name,
		Street:      order.ShippingAddress.Street,
		HouseNumber: order.ShippingAddress.HouseNumber,
		PostalCode:  order.ShippingAddress.PostalCode,
		City:        order.ShippingAddress.City,
		Country:     order.ShippingAddress.CountryCode,
		Email:       order.Customer.Email,
		Phone:       order.Customer.Phone,
		OptionCode:  order.ShippingOption.Code,
		Signature:   order.ShippingOption.Characteristics.RequiresSignature,
	}

	var parcel wireParcelResponse
	if err := c.post(ctx, "/api/v2/parcels", reqBody, &parcel); err != nil {
		return nil, err
	}
	if parcel.ID == "" {
		return nil, fmt.Errorf("carrier returned parcel without id for order %s", order.Number)
	}

	return &domain.Parcel{
		ID:             parcel.ID,
		TrackingNumber: parcel.TrackingNumber,
		TrackingURL:    parcel.TrackingURL,
		Carrier:        parcel.Carrier,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	requestStr := c.host + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestStr, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}
	return nil
}
