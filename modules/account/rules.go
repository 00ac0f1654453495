package account

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/finkit/accountkit/pkg/validator"
)

// Invariant codes carried by validation errors, so callers can branch on
// the failure kind without parsing messages.
const (
	CodeInvalidAccountNumber = "invalid_account_number"
	CodeInvalidDateRange     = "invalid_date_range"
	CodeInvalidRate          = "invalid_rate"
)

// MinNumberLength is the shortest account number the factory accepts.
const MinNumberLength = 5

const dateFormat = "2006-01-02"

// numberRule checks the account number is present and at least
// MinNumberLength characters long.
func numberRule(no string) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return utf8.RuneCountInString(no) >= MinNumberLength
		},
		Error: validator.ValidationError{
			Field:   "account_no",
			Code:    CodeInvalidAccountNumber,
			Message: fmt.Sprintf("Account No has to be at least %d characters long: found %s", MinNumberLength, no),
		},
	}
}

// dateRangeRule checks the close date, when present, does not precede the
// open date. An absent close date always passes.
func dateRangeRule(openDate time.Time, closeDate *time.Time) validator.Rule {
	var message string
	if closeDate != nil {
		message = fmt.Sprintf("Close date %s cannot be earlier than open date %s",
			closeDate.Format(dateFormat), openDate.Format(dateFormat))
	}
	return validator.Rule{
		Check: func() bool {
			return closeDate == nil || !closeDate.Before(openDate)
		},
		Error: validator.ValidationError{
			Field:   "close_date",
			Code:    CodeInvalidDateRange,
			Message: message,
		},
	}
}

// rateRule checks a savings interest rate is strictly positive.
func rateRule(rate decimal.Decimal) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return rate.IsPositive()
		},
		Error: validator.ValidationError{
			Field:   "rate_of_interest",
			Code:    CodeInvalidRate,
			Message: fmt.Sprintf("Interest rate %s must be > 0", rate),
		},
	}
}
