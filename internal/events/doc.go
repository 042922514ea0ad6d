// Package events carries page lifecycle notifications between the components
// that decide when something happens (the reveal sequences) and the ones that
// act on it (layer toggles, renderers, logging).
//
// An Event has a dotted type such as "intro.phase" and a JSON payload.
// Handlers subscribe to one type, or to every type with the empty string,
// and the Bus delivers each event to all matching handlers in order of
// subscription.
package events
