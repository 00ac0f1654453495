// Package money provides an immutable monetary value type backed by
// arbitrary-precision decimals, pairing an amount with an ISO 4217
// currency code.
//
// The zero value of Money is a valid zero amount with no currency, which
// makes it a natural default for freshly opened balances. Arithmetic
// helpers return new values and enforce currency agreement; no currency
// conversion is provided.
package money
