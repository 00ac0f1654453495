package account_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkit/accountkit/modules/account"
	"github.com/finkit/accountkit/pkg/money"
	"github.com/finkit/accountkit/pkg/validator"
)

var today = time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func newFactory(s account.Strategy) *account.Factory {
	return account.NewFactory(
		account.WithStrategy(s),
		account.WithClock(fixedClock),
	)
}

func allStrategies() []account.Strategy {
	return []account.Strategy{account.Accumulate, account.FailSlow, account.FailFast}
}

func TestFactory_Checking(t *testing.T) {
	t.Run("constructs identical accounts under every strategy", func(t *testing.T) {
		var accounts []account.Account
		for _, s := range allStrategies() {
			acc, err := newFactory(s).Checking("AC001", "John Doe", nil, nil, money.Money{})
			require.NoError(t, err, s.String())
			accounts = append(accounts, acc)
		}

		for _, acc := range accounts {
			assert.Equal(t, accounts[0], acc)
		}

		acc := accounts[0]
		assert.Equal(t, account.Checking, acc.Type)
		assert.Equal(t, "AC001", acc.No)
		assert.Equal(t, "John Doe", acc.Name)
		assert.Equal(t, today, acc.OpenDate)
		assert.Nil(t, acc.CloseDate)
		assert.True(t, acc.Balance.IsZero())
	})

	t.Run("defaults absent open date to the injected clock", func(t *testing.T) {
		acc, err := newFactory(account.Accumulate).Checking("AC001", "John Doe", nil, nil, money.Money{})
		require.NoError(t, err)
		assert.Equal(t, today, acc.OpenDate)
	})

	t.Run("keeps an explicit open date", func(t *testing.T) {
		opened := today.AddDate(-1, 0, 0)
		acc, err := newFactory(account.Accumulate).Checking("AC001", "John Doe", &opened, nil, money.Money{})
		require.NoError(t, err)
		assert.Equal(t, opened, acc.OpenDate)
	})

	t.Run("accepts a close date on or after the open date", func(t *testing.T) {
		closed := today.AddDate(0, 1, 0)
		acc, err := newFactory(account.Accumulate).Checking("AC001", "John Doe", &today, &closed, money.Money{})
		require.NoError(t, err)
		require.NotNil(t, acc.CloseDate)
		assert.True(t, acc.CloseDate.Equal(closed))

		same := today
		acc, err = newFactory(account.Accumulate).Checking("AC001", "John Doe", &today, &same, money.Money{})
		require.NoError(t, err)
		assert.NotNil(t, acc.CloseDate)
	})

	t.Run("short account number fails with the exact message", func(t *testing.T) {
		_, err := newFactory(account.FailFast).Checking("AC", "John Doe", nil, nil, money.Money{})
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, account.CodeInvalidAccountNumber, verr.Code)
		assert.Equal(t, "Account No has to be at least 5 characters long: found AC", verr.Message)
	})

	t.Run("empty account number fails", func(t *testing.T) {
		for _, s := range allStrategies() {
			_, err := newFactory(s).Checking("", "John Doe", nil, nil, money.Money{})
			assert.Error(t, err, s.String())
		}
	})

	t.Run("close date before open date fails", func(t *testing.T) {
		closed := today.AddDate(0, 0, -1)
		_, err := newFactory(account.FailFast).Checking("AC001", "John Doe", &today, &closed, money.Money{})
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, account.CodeInvalidDateRange, verr.Code)
	})

	t.Run("carries a restored balance", func(t *testing.T) {
		balance, err := money.NewFromString("250.75", "USD")
		require.NoError(t, err)

		acc, err := newFactory(account.Accumulate).Checking("AC001", "John Doe", nil, nil, balance)
		require.NoError(t, err)
		assert.True(t, acc.Balance.Equal(balance))
	})

	t.Run("never returns a partially constructed account", func(t *testing.T) {
		acc, err := newFactory(account.Accumulate).Checking("AC", "John Doe", nil, nil, money.Money{})
		require.Error(t, err)
		assert.Equal(t, account.Account{}, acc)
	})
}

func TestFactory_Savings(t *testing.T) {
	rate := decimal.RequireFromString("2.5")

	t.Run("constructs identical accounts under every strategy", func(t *testing.T) {
		var accounts []account.Account
		for _, s := range allStrategies() {
			acc, err := newFactory(s).Savings("SB001", "Jane Doe", rate, nil, nil, money.Money{})
			require.NoError(t, err, s.String())
			accounts = append(accounts, acc)
		}

		for _, acc := range accounts {
			assert.Equal(t, accounts[0], acc)
		}
		assert.Equal(t, account.Savings, accounts[0].Type)
		assert.True(t, accounts[0].RateOfInterest.Equal(rate))
	})

	t.Run("zero rate fails", func(t *testing.T) {
		for _, s := range allStrategies() {
			_, err := newFactory(s).Savings("SB001", "Jane Doe", decimal.Zero, nil, nil, money.Money{})
			assert.Error(t, err, s.String())
		}
	})

	t.Run("negative rate fails with InvalidRate", func(t *testing.T) {
		_, err := newFactory(account.FailFast).Savings("SB001", "Jane Doe", decimal.NewFromInt(-1), nil, nil, money.Money{})
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, account.CodeInvalidRate, verr.Code)
	})
}

func TestFactory_StrategySemantics(t *testing.T) {
	// Short number AND non-positive rate: two invariants violated at once.
	negRate := decimal.NewFromInt(-1)

	t.Run("accumulate reports both failures in evaluation order", func(t *testing.T) {
		_, err := newFactory(account.Accumulate).Savings("AC", "Jane", negRate, nil, nil, money.Money{})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, account.CodeInvalidAccountNumber, verrs[0].Code)
		assert.Equal(t, account.CodeInvalidRate, verrs[1].Code)
	})

	t.Run("fail-slow reports only the last failure", func(t *testing.T) {
		_, err := newFactory(account.FailSlow).Savings("AC", "Jane", negRate, nil, nil, money.Money{})
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, account.CodeInvalidRate, verr.Code)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
	})

	t.Run("fail-fast reports only the first failure", func(t *testing.T) {
		_, err := newFactory(account.FailFast).Savings("AC", "Jane", negRate, nil, nil, money.Money{})
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, account.CodeInvalidAccountNumber, verr.Code)
	})

	t.Run("single violation surfaces the same invariant everywhere", func(t *testing.T) {
		for _, s := range allStrategies() {
			_, err := newFactory(s).Savings("SB001", "Jane", negRate, nil, nil, money.Money{})
			require.Error(t, err, s.String())

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1, s.String())
			assert.Equal(t, account.CodeInvalidRate, verrs[0].Code, s.String())
		}
	})
}

func TestFactory_Revalidation(t *testing.T) {
	// Re-submitting an already-valid account's own fields must never fail.
	f := newFactory(account.Accumulate)

	closed := today.AddDate(1, 0, 0)
	orig, err := f.Savings("SB001", "Jane Doe", decimal.RequireFromString("1.5"), &today, &closed, money.Money{})
	require.NoError(t, err)

	again, err := f.Savings(orig.No, orig.Name, orig.RateOfInterest, &orig.OpenDate, orig.CloseDate, orig.Balance)
	require.NoError(t, err)
	assert.Equal(t, orig, again)
}

func TestFactory_Close(t *testing.T) {
	f := newFactory(account.Accumulate)

	acc, err := f.Checking("AC001", "John Doe", &today, nil, money.Money{})
	require.NoError(t, err)

	t.Run("sets the close date on a copy", func(t *testing.T) {
		at := today.AddDate(0, 6, 0)
		closed, err := f.Close(acc, at)
		require.NoError(t, err)

		require.NotNil(t, closed.CloseDate)
		assert.True(t, closed.CloseDate.Equal(at))
		assert.Nil(t, acc.CloseDate, "original must be untouched")
	})

	t.Run("rejects a close date before the open date", func(t *testing.T) {
		_, err := f.Close(acc, today.AddDate(0, 0, -1))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, account.CodeInvalidDateRange, verrs[0].Code)
	})
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]account.Strategy{
		"accumulate": account.Accumulate,
		"fail-slow":  account.FailSlow,
		"fail-fast":  account.FailFast,
	} {
		got, err := account.ParseStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := account.ParseStrategy("bogus")
	assert.Error(t, err)
}
