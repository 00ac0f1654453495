package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finkit/accountkit/pkg/money"
	"github.com/finkit/accountkit/pkg/validator"
)

// Strategy selects how the factory combines field validation outcomes.
// All strategies agree on whether construction succeeds; they differ only
// in which and how many errors are reported on failure.
type Strategy int

const (
	// Accumulate evaluates every field rule and reports all failures at
	// once, in evaluation order (account number, dates, rate). Callers get
	// a complete error report in a single round trip.
	Accumulate Strategy = iota

	// FailSlow evaluates every field rule but reports only the last
	// failure, collapsing earlier ones.
	FailSlow

	// FailFast stops at the first failing rule; later rules are never
	// evaluated.
	FailFast
)

func (s Strategy) String() string {
	switch s {
	case Accumulate:
		return "accumulate"
	case FailSlow:
		return "fail-slow"
	case FailFast:
		return "fail-fast"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a configuration string into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "accumulate":
		return Accumulate, nil
	case "fail-slow":
		return FailSlow, nil
	case "fail-fast":
		return FailFast, nil
	default:
		return Accumulate, fmt.Errorf("unknown validation strategy %q", s)
	}
}

// Clock supplies the current time. The factory never reads a global clock,
// so tests can pin "today".
type Clock func() time.Time

// Factory constructs validated Account values. It is a pure function of
// its inputs and the injected clock; it is safe for concurrent use.
type Factory struct {
	strategy Strategy
	now      Clock
}

type FactoryOption func(*Factory)

// WithStrategy selects the validation composition strategy.
func WithStrategy(s Strategy) FactoryOption {
	return func(f *Factory) { f.strategy = s }
}

// WithClock overrides the time source used to default absent open dates.
func WithClock(now Clock) FactoryOption {
	return func(f *Factory) {
		if now != nil {
			f.now = now
		}
	}
}

// NewFactory creates a Factory. Defaults: Accumulate strategy, time.Now.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		strategy: Accumulate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Checking constructs a checking account. An absent open date defaults to
// the factory clock's "today". The balance may be the zero Money value for
// a fresh account, or a restored balance.
//
// On failure the returned error is a validator.ValidationErrors (Accumulate)
// or a single validator.ValidationError (FailSlow, FailFast); no partially
// constructed account is ever returned.
func (f *Factory) Checking(no, name string, openedAt, closedAt *time.Time, balance money.Money) (Account, error) {
	opened := f.openDate(openedAt)

	if err := f.apply(
		numberRule(no),
		dateRangeRule(opened, closedAt),
	); err != nil {
		return Account{}, err
	}

	return Account{
		Type:      Checking,
		No:        no,
		Name:      name,
		OpenDate:  opened,
		CloseDate: copyDate(closedAt),
		Balance:   balance,
	}, nil
}

// Savings constructs a savings account. In addition to the checking rules,
// the interest rate must be strictly positive.
func (f *Factory) Savings(no, name string, rate decimal.Decimal, openedAt, closedAt *time.Time, balance money.Money) (Account, error) {
	opened := f.openDate(openedAt)

	if err := f.apply(
		numberRule(no),
		dateRangeRule(opened, closedAt),
		rateRule(rate),
	); err != nil {
		return Account{}, err
	}

	return Account{
		Type:           Savings,
		No:             no,
		Name:           name,
		OpenDate:       opened,
		CloseDate:      copyDate(closedAt),
		Balance:        balance,
		RateOfInterest: rate,
	}, nil
}

// Close returns a copy of the account with the close date set, after
// checking the date does not precede the account's open date.
func (f *Factory) Close(acc Account, closedAt time.Time) (Account, error) {
	if err := f.apply(dateRangeRule(acc.OpenDate, &closedAt)); err != nil {
		return Account{}, err
	}

	acc.CloseDate = &closedAt
	return acc, nil
}

func (f *Factory) openDate(openedAt *time.Time) time.Time {
	if openedAt != nil {
		return *openedAt
	}
	return f.now()
}

func (f *Factory) apply(rules ...validator.Rule) error {
	switch f.strategy {
	case FailSlow:
		return validator.ApplyCollapsed(rules...)
	case FailFast:
		return validator.ApplyFirst(rules...)
	default:
		return validator.Apply(rules...)
	}
}
