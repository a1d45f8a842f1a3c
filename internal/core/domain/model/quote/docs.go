// Package quote models a shipment being priced on the public site.
//
//   - ShipmentForm: the raw, editable quoting form
//   - ShipmentRequest: a validated snapshot of the form
//   - Estimate: the min/max price band produced by the tariff engine
//   - PendingQuote: a request plus its resolved price, held across the login boundary
//
// All types are values; a PendingQuote never changes after construction.
package quote
