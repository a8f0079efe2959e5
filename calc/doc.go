// Package calc implements validated floating-point arithmetic: addition,
// subtraction, multiplication, division, and exponentiation over float64
// values.
//
// Every operation validates its operands before computing and its result
// after, against a shared magnitude bound. Failures are reported as typed
// errors carrying a [Kind] that classifies the violation, so callers can
// branch on the failure class without parsing messages.
//
// The package is pure: no logging, no I/O, no shared state. Observability
// belongs to the caller.
package calc
