// Package errs provides the typed errors shared by the quoting service.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrObjectNotFound) with a struct carrying the offending
// parameter and an optional cause. Unwrap always returns the sentinel, so callers
// classify failures with errors.Is and read details with errors.As:
//
//	if errors.Is(err, errs.ErrValueIsRequired) {
//	    // missing form field
//	}
//
// IsValidation groups the input-related kinds so adapters can map them to a
// single client-facing response.
package errs
