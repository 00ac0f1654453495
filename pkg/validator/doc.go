// Package validator provides rule-based validation with three composition
// policies that differ in how independent rule failures combine.
//
// A Rule pairs a boolean Check function with the ValidationError to report
// when the check fails. Rules carry no hidden state, so the package is
// stateless and goroutine-safe.
//
// # Composition policies
//
// The same set of rules can be combined three ways:
//
//   - Apply runs every rule and accumulates all failures, in argument
//     order, into a ValidationErrors slice. One round trip reports every
//     problem at once.
//   - ApplyCollapsed runs every rule but returns only the last failing
//     rule's error. All checks still execute, only the aggregation is
//     weaker.
//   - ApplyFirst short-circuits: rules run in order and the first failure
//     is returned immediately, later rules are never evaluated.
//
// For any given input the three policies agree on whether validation
// succeeds; they differ only in which and how many errors surface.
//
// # Usage
//
//	err := validator.Apply(
//	    accountNoRule(no),
//	    dateRangeRule(opened, closed),
//	    rateRule(rate),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level failures
//	}
//
// Both ValidationError and ValidationErrors implement the error interface
// and work with errors.As, so callers can recover structured failure
// details from a plain error return.
package validator
