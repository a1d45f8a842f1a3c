// Package session drives what one visitor sees and may do.
//
// A visitor's State moves between four views:
//
//	Landing ──RequestClientArea / BuyNow──> LoginPrompt
//	LoginPrompt ──Login(client)──> ClientDashboard
//	LoginPrompt ──Login(admin)───> AdminDashboard
//	LoginPrompt ──CancelLogin────> Landing
//	ClientDashboard / AdminDashboard ──Logout──> Landing
//
// Machine.Reduce applies one Event to a State and returns the next State. The input
// is never modified; when Reduce fails it returns the input unchanged together with
// the error. Order side effects (confirm, authorize) go through the order command
// handlers, so the order book is the only state shared between visitors.
//
// A PendingQuote created on Landing with BuyNow is carried across the login
// unchanged and shown on the client dashboard until it is confirmed or discarded.
//
// Store keeps one State per visitor, keyed by a session UUID, and serialises the
// events of each visitor.
package session
