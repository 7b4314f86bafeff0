package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

type Currency string

const CurrencyEUR Currency = "EUR"

// Money is an amount of minor currency units (cents). The amount is kept
// unexported so a Money can only be built through NewMoney or ParseMajor,
// never from a bare number of ambiguous unit.
type Money struct {
	amount   int64
	currency Currency
}

// NewMoney builds a Money from an amount already expressed in minor units.
func NewMoney(minorUnits int64, currency Currency) (Money, error) {
	if minorUnits < 0 {
		return Money{}, ErrInvalidAmount
	}
	if currency == "" {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: minorUnits, currency: currency}, nil
}

func MustMoney(minorUnits int64, currency Currency) Money {
	m, err := NewMoney(minorUnits, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMajor converts a major-unit decimal string ("12.50") into Money.
// Parsing is pure integer arithmetic; values with more fractional digits
// than the currency carries are rejected rather than rounded.
func ParseMajor(value string, currency Currency) (Money, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "-") {
		return Money{}, ErrInvalidAmount
	}

	whole, frac, _ := strings.Cut(value, ".")
	if len(frac) > 2 {
		return Money{}, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}

	return NewMoney(w*100+f, currency)
}

func (m Money) MinorUnits() int64 {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

// Major renders the amount as a major-unit decimal string. This is the one
// place minor units leave the pipeline; everything else stays integer cents.
func (m Money) Major() string {
	return decimal.MustNew(m.amount, 2).String()
}

// IsZero reports whether the Money carries no value. The zero value of the
// type (no currency) is also considered zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsNormalized reports whether the Money was built through a constructor:
// it has a currency tag and a non-negative amount.
func (m Money) IsNormalized() bool {
	return m.currency != "" && m.amount >= 0
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// MulQuantity scales the amount by a line-item quantity.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: m.amount * int64(quantity), currency: m.currency}, nil
}

func (m Money) Cmp(other Money) int {
	switch {
	case m.amount < other.amount:
		return -1
	case m.amount > other.amount:
		return 1
	default:
		return 0
	}
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Major(), m.currency)
}

type moneyJSON struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"amount":%d,"currency":%q}`, m.amount, m.currency)), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// The zero value round-trips as-is.
	if raw.Amount == 0 && raw.Currency == "" {
		*m = Money{}
		return nil
	}
	parsed, err := NewMoney(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
