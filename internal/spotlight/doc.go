// Package spotlight computes the visual state of the scroll-pinned spotlight
// section from a single normalized progress value.
//
// The host (a browser bridge, a renderer, a preview endpoint) owns scrolling
// and drawing. It feeds progress in [0,1] to Animator.OnProgress and receives
// a Frame describing every animated element: the scattered images, the cover
// image, the Swiss cross lines and corner dots, and the per-word opacity of
// the intro and outro headlines. Frames depend only on progress, the viewport
// and the layout, so replaying a progress value reproduces the same frame.
//
// Nothing here clamps progress on entry. Each effect applies its own window
// formula, and images deliberately extrapolate past their targets once their
// local progress exceeds 1.
package spotlight
