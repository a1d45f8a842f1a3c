// Package kernel provides the value objects shared across the quoting domain:
// Port, CargoType, Weight and UUID.
//
// Parsers accept the raw strings typed into the public quoting form and report
// problems through the errs package: a blank field is a ValueIsRequiredError and
// an unusable one a ValueIsInvalidError, so callers can tell the two apart.
package kernel
