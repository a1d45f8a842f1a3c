// Package order provides the Order aggregate of the order book.
//
// The package includes:
//   - Order: a client's confirmed shipment with its agreed price
//   - Status: the order lifecycle, PendingAuthorization -> Authorized
//   - ID: "ORD-NNN" identifiers issued from a monotonic sequence
//
// Key business rules:
//   - Confirmed quotes always start in PendingAuthorization
//   - Authorize is the only transition; it fails for any other status
//   - Orders are never deleted
package order
