package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure. Code identifies
// the violated invariant so callers can branch on the failure kind without
// parsing the human-readable Message.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

// Error implements the error interface for a single failure.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors represents an ordered collection of validation failures.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and accumulates all failures in argument
// order. It returns nil when all rules pass, otherwise a non-empty
// ValidationErrors listing every failing rule.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ApplyCollapsed evaluates every rule, like Apply, but collapses the
// failures into a single error: pairwise combination of two failures keeps
// the later one, so only the last failing rule's error survives. Use it
// when every rule must run (for side effects or logging) yet the caller
// only wants one error back.
func ApplyCollapsed(rules ...Rule) error {
	var failed *ValidationError

	for i := range rules {
		if !rules[i].Check() {
			failed = &rules[i].Error
		}
	}

	if failed == nil {
		return nil
	}

	return *failed
}

// ApplyFirst evaluates rules in order and stops at the first failure,
// returning its error. Rules after the failing one are never evaluated.
func ApplyFirst(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// ExtractValidationErrors extracts ValidationErrors from an error. A single
// ValidationError is wrapped into a one-element slice so callers can handle
// both accumulating and collapsing results uniformly.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return ValidationErrors{validationErr}
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
