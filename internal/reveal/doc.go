// Package reveal holds the two timed state machines of the landing page: the
// four-phase intro that unveils the hero one layer at a time, and the outro
// section whose panels animate in when scrolled into view.
//
// Both machines are table driven. Side effects are published as events so
// the host decides what "enable layer phase-2" means for its renderer.
package reveal
