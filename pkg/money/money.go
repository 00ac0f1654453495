package money

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// Common currencies.
var (
	USD = Currency{code: "USD"}
	EUR = Currency{code: "EUR"}
	GBP = Currency{code: "GBP"}
)

// Money is an immutable monetary amount with currency. The zero value is a
// zero amount with no currency, which is a valid starting balance.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New creates a Money value from a decimal amount and currency.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// NewFromString parses an amount string and currency code into a Money value.
func NewFromString(amount, currency string) (Money, error) {
	cur, err := NewCurrency(currency)
	if err != nil {
		return Money{}, err
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	return Money{amount: d, currency: cur}, nil
}

// Zero returns a zero amount in the given currency.
func Zero(currency Currency) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() Currency {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns the sum of m and other. The currencies must match, except
// that a zero-valued Money (no currency) adopts the other side's currency.
func (m Money) Add(other Money) (Money, error) {
	switch {
	case m.currency == other.currency:
		return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
	case m.currency == Currency{} && m.amount.IsZero():
		return Money{amount: other.amount, currency: other.currency}, nil
	case other.currency == Currency{} && other.amount.IsZero():
		return m, nil
	default:
		return Money{}, fmt.Errorf("currency mismatch: cannot add %s to %s", other.currency, m.currency)
	}
}

// Subtract returns the difference of m minus other. The currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot subtract %s from %s", other.currency, m.currency)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Equal returns true if both the amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String formats the value as "<amount> <currency>", for example "100.00 USD".
func (m Money) String() string {
	if m.currency.code == "" {
		return m.amount.StringFixed(2)
	}
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency.code)
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// MarshalJSON encodes the amount as a string to avoid float precision loss.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Amount:   m.amount.String(),
		Currency: m.currency.code,
	})
}

// UnmarshalJSON decodes {"amount":"10.50","currency":"USD"}. A missing or
// empty currency yields a currency-less amount.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	amount := decimal.Zero
	if raw.Amount != "" {
		var err error
		amount, err = decimal.NewFromString(raw.Amount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", raw.Amount, err)
		}
	}

	var cur Currency
	if raw.Currency != "" {
		var err error
		cur, err = NewCurrency(raw.Currency)
		if err != nil {
			return err
		}
	}

	*m = Money{amount: amount, currency: cur}
	return nil
}
