// Package services provides stateless domain services.
//
// TariffEngine turns a cargo type, a weight and the last-mile flag into a price
// band using a configurable Rates table. It has no side effects: the same inputs
// always produce the same Estimate, so results may be cached freely.
package services
