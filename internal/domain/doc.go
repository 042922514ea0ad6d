// Package domain contains the core entities of the contact flow, independent
// of any transport or email provider: the submission itself, the validation
// rules shared by the client and the HTTP handler, and the outbound message
// handed to a delivery provider.
package domain
