package spotlight

// NarrowBreakpoint is the logical width below which the layout is treated as
// mobile.
const NarrowBreakpoint = 1000.0

// Viewport is the visible area in logical pixels.
type Viewport struct {
	Width  float64 `json:"width"  yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Narrow reports whether the viewport uses the mobile tuning.
func (v Viewport) Narrow() bool {
	return v.Width < NarrowBreakpoint
}

// ScatterMultiplier scales scatter directions into viewport distances.
// Narrow screens throw images further to clear the smaller frame.
func (v Viewport) ScatterMultiplier() float64 {
	if v.Narrow() {
		return 2.5
	}
	return 0.5
}

// ScaleMultiplier speeds up image scaling relative to image movement.
func (v Viewport) ScaleMultiplier() float64 {
	if v.Narrow() {
		return 4
	}
	return 2
}
