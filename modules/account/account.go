package account

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finkit/accountkit/pkg/money"
)

// Type discriminates the account variants.
type Type string

const (
	Checking Type = "checking"
	Savings  Type = "savings"
)

// Account is an immutable bank account value. It is a tagged union: the
// common fields apply to every variant, RateOfInterest is meaningful only
// when Type is Savings. Accounts are built exclusively through a Factory,
// which guarantees the invariants (number length, date ordering, positive
// savings rate) hold for every Account value in circulation. "Updates"
// return a modified copy.
type Account struct {
	Type           Type            `json:"type"`
	No             string          `json:"account_no"`
	Name           string          `json:"name"`
	OpenDate       time.Time       `json:"open_date"`
	CloseDate      *time.Time      `json:"close_date,omitempty"`
	Balance        money.Money     `json:"balance"`
	RateOfInterest decimal.Decimal `json:"rate_of_interest"`
}

// MarshalJSON omits the interest rate for non-savings accounts, where the
// field carries no meaning. omitempty cannot do this: decimal.Decimal is a
// struct, so its zero value never counts as empty.
func (a Account) MarshalJSON() ([]byte, error) {
	type alias Account
	out := struct {
		alias
		RateOfInterest *decimal.Decimal `json:"rate_of_interest,omitempty"`
	}{alias: alias(a)}
	if a.Type == Savings {
		out.RateOfInterest = &a.RateOfInterest
	}
	return json.Marshal(out)
}

// IsClosed reports whether the account has a close date on or before the
// given instant.
func (a Account) IsClosed(at time.Time) bool {
	return a.CloseDate != nil && !a.CloseDate.After(at)
}

// WithBalance returns a copy of the account carrying the given balance.
// Used when restoring persisted accounts.
func (a Account) WithBalance(balance money.Money) Account {
	a.Balance = balance
	return a
}

func copyDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
