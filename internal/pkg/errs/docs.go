// Package errs provides the typed value errors shared by the domain, application
// and adapter layers.
//
// Every error type follows the same pattern:
//   - a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct carrying the parameter name and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Business outcomes of use cases (forbidden, not claimable, already rated ...) are
// not modelled here; they live next to the use cases that return them.
package errs
