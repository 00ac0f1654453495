package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finkit/accountkit/pkg/validator"
)

func passing(field string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: field, Code: "unused", Message: "should not surface"},
	}
}

func failing(field, code, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: field, Code: code, Message: message},
	}
}

// counted wraps a rule so tests can observe whether a policy evaluated it.
func counted(rule validator.Rule, calls *int) validator.Rule {
	check := rule.Check
	rule.Check = func() bool {
		*calls++
		return check()
	}
	return rule
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(passing("a"), passing("b"))
		assert.NoError(t, err)
	})

	t.Run("accumulates all failures in argument order", func(t *testing.T) {
		err := validator.Apply(
			failing("account_no", "invalid_account_number", "too short"),
			passing("close_date"),
			failing("rate_of_interest", "invalid_rate", "must be positive"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "account_no", verrs[0].Field)
		assert.Equal(t, "rate_of_interest", verrs[1].Field)
	})

	t.Run("evaluates every rule even after a failure", func(t *testing.T) {
		var calls int
		_ = validator.Apply(
			counted(failing("a", "c", "m"), &calls),
			counted(failing("b", "c", "m"), &calls),
			counted(passing("c"), &calls),
		)
		assert.Equal(t, 3, calls)
	})
}

func TestApplyCollapsed(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.ApplyCollapsed(passing("a"), passing("b")))
	})

	t.Run("keeps only the last failing rule's error", func(t *testing.T) {
		err := validator.ApplyCollapsed(
			failing("account_no", "invalid_account_number", "too short"),
			failing("rate_of_interest", "invalid_rate", "must be positive"),
		)
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "rate_of_interest", verr.Field)
		assert.Equal(t, "invalid_rate", verr.Code)
	})

	t.Run("still evaluates every rule", func(t *testing.T) {
		var calls int
		_ = validator.ApplyCollapsed(
			counted(failing("a", "c", "m"), &calls),
			counted(passing("b"), &calls),
			counted(failing("c", "c", "m"), &calls),
		)
		assert.Equal(t, 3, calls)
	})
}

func TestApplyFirst(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.ApplyFirst(passing("a"), passing("b")))
	})

	t.Run("returns the first failing rule's error", func(t *testing.T) {
		err := validator.ApplyFirst(
			failing("account_no", "invalid_account_number", "too short"),
			failing("rate_of_interest", "invalid_rate", "must be positive"),
		)
		require.Error(t, err)

		var verr validator.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "account_no", verr.Field)
	})

	t.Run("never evaluates rules after the first failure", func(t *testing.T) {
		var calls int
		_ = validator.ApplyFirst(
			counted(passing("a"), &calls),
			counted(failing("b", "c", "m"), &calls),
			counted(failing("c", "c", "m"), &calls),
		)
		assert.Equal(t, 2, calls)
	})
}

func TestPoliciesAgreeOnOutcome(t *testing.T) {
	t.Run("all succeed on valid input", func(t *testing.T) {
		rules := []validator.Rule{passing("a"), passing("b"), passing("c")}
		assert.NoError(t, validator.Apply(rules...))
		assert.NoError(t, validator.ApplyCollapsed(rules...))
		assert.NoError(t, validator.ApplyFirst(rules...))
	})

	t.Run("all fail on invalid input", func(t *testing.T) {
		rules := []validator.Rule{passing("a"), failing("b", "c", "m"), passing("c")}
		assert.Error(t, validator.Apply(rules...))
		assert.Error(t, validator.ApplyCollapsed(rules...))
		assert.Error(t, validator.ApplyFirst(rules...))
	})
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "account_no", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "rate_of_interest", Message: "must be positive"})

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "account_no: is required")
		assert.Contains(t, msg, "rate_of_interest: must be positive")
	})
}

func TestValidationErrors_Helpers(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "account_no", Code: "invalid_account_number", Message: "too short"},
		{Field: "account_no", Code: "invalid_account_number", Message: "is required"},
		{Field: "close_date", Code: "invalid_date_range", Message: "precedes open date"},
	}

	t.Run("Has reports field presence", func(t *testing.T) {
		assert.True(t, errs.Has("account_no"))
		assert.False(t, errs.Has("rate_of_interest"))
	})

	t.Run("Get returns all messages for a field", func(t *testing.T) {
		assert.Equal(t, []string{"too short", "is required"}, errs.Get("account_no"))
		assert.Nil(t, errs.Get("missing"))
	})

	t.Run("Fields deduplicates in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"account_no", "close_date"}, errs.Fields())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error yields nil", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("unrelated error yields nil", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("extracts accumulated errors", func(t *testing.T) {
		err := validator.Apply(failing("a", "c1", "m1"), failing("b", "c2", "m2"))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("wraps a single validation error", func(t *testing.T) {
		err := validator.ApplyFirst(failing("a", "c1", "m1"))
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "a", verrs[0].Field)
	})
}
