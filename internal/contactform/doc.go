// Package contactform is the visitor-side half of the contact flow: it holds
// the form's field values, validates them with the same rules the server
// applies, posts them to /api/contact and tracks the feedback the visitor
// sees.
//
// A Form permits one request at a time. While a submission is in flight the
// submit control reports itself disabled and further Submit calls fail fast
// with ErrSubmitInFlight.
package contactform
