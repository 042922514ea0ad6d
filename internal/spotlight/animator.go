package spotlight

import (
	"errors"
	"fmt"
	"sync"
)

// Depth and scale anchors for the image flight.
const (
	imageStartZ = -1000.0
	imageEndZ   = 2000.0
	coverStartZ = -1000.0
	coverTravel = 1000.0
)

// ErrScatterMismatch is returned when the layout has a different number of
// images than there are scatter targets.
var ErrScatterMismatch = errors.New("scatter target count does not match image count")

// Transform is the computed 3D placement of one element.
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Scale float64 `json:"scale"`
}

// DotState is the appearance of one corner dot.
type DotState struct {
	Opacity float64 `json:"opacity"`
	Scale   float64 `json:"scale"`
}

// Corner indexes DotOffsets and Frame.Dots, clockwise from top-left.
type Corner int

// Corners in activation order.
const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// String returns the corner's CSS-style name.
func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return fmt.Sprintf("corner(%d)", int(c))
	}
}

// Frame is the visual state of the whole section at one progress value.
type Frame struct {
	Progress float64     `json:"progress"`
	Images   []Transform `json:"images"`
	Cover    Transform   `json:"cover"`
	Dots     [4]DotState `json:"dots"`

	// HorizontalWidth and VerticalHeight are percentages of the cross lines.
	HorizontalWidth float64 `json:"horizontal_width"`
	VerticalHeight  float64 `json:"vertical_height"`

	IntroWords []float64 `json:"intro_words"`
	OutroWords []float64 `json:"outro_words"`
}

// Layout describes the elements the animator drives.
type Layout struct {
	Images     int
	IntroWords []string
	OutroWords []string
}

// Renderer receives every computed frame.
type Renderer interface {
	Render(frame Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

// Render calls f(frame).
func (f RendererFunc) Render(frame Frame) { f(frame) }

// Animator maps progress to frames for a fixed layout. Start and end
// positions are cached per viewport; everything else is recomputed per call.
type Animator struct {
	mu       sync.RWMutex
	layout   Layout
	targets  []ScatterTarget
	viewport Viewport
	start    []Transform
	end      []Transform
	renderer Renderer
}

// Option configures an Animator.
type Option func(*Animator)

// WithRenderer sets the Renderer called by OnProgress.
func WithRenderer(r Renderer) Option {
	return func(a *Animator) {
		a.renderer = r
	}
}

// WithScatterTargets replaces DefaultScatterTargets.
func WithScatterTargets(targets []ScatterTarget) Option {
	return func(a *Animator) {
		a.targets = targets
	}
}

// NewAnimator builds an animator for layout in viewport.
func NewAnimator(viewport Viewport, layout Layout, opts ...Option) (*Animator, error) {
	a := &Animator{
		layout:  layout,
		targets: DefaultScatterTargets,
	}
	for _, opt := range opts {
		opt(a)
	}

	if len(a.targets) != layout.Images {
		return nil, fmt.Errorf("%w: %d targets, %d images", ErrScatterMismatch, len(a.targets), layout.Images)
	}

	a.Resize(viewport)
	return a, nil
}

// Resize recomputes the cached positions for a new viewport.
func (a *Animator) Resize(viewport Viewport) {
	n := a.layout.Images
	start := make([]Transform, n)
	end := make([]Transform, n)

	m := viewport.ScatterMultiplier()
	for i := 0; i < n; i++ {
		start[i] = Transform{X: 0, Y: 0, Z: imageStartZ, Scale: 0}
		end[i] = Transform{
			X:     a.targets[i].DirX * viewport.Width * m,
			Y:     a.targets[i].DirY * viewport.Height * m,
			Z:     imageEndZ,
			Scale: 1,
		}
	}

	a.mu.Lock()
	a.viewport = viewport
	a.start = start
	a.end = end
	a.mu.Unlock()
}

// Viewport returns the viewport positions are currently computed for.
func (a *Animator) Viewport() Viewport {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.viewport
}

// EndPositions returns a copy of the cached scatter targets in pixels.
func (a *Animator) EndPositions() []Transform {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]Transform(nil), a.end...)
}

// Frame computes the visual state at progress p. It has no side effects.
func (a *Animator) Frame(p float64) Frame {
	a.mu.RLock()
	defer a.mu.RUnlock()

	f := Frame{
		Progress:   p,
		Images:     make([]Transform, len(a.start)),
		IntroWords: make([]float64, len(a.layout.IntroWords)),
		OutroWords: make([]float64, len(a.layout.OutroWords)),
	}

	k := a.viewport.ScaleMultiplier()
	for i := range a.start {
		lp := ramp(p, float64(i)*ImageStagger, ImageRate)
		s, e := a.start[i], a.end[i]
		f.Images[i] = Transform{
			X:     lerp(s.X, e.X, lp),
			Y:     lerp(s.Y, e.Y, lp),
			Z:     lerp(s.Z, e.Z, lp),
			Scale: lerp(s.Scale, e.Scale, lp*k),
		}
	}

	f.Cover = coverTransform(p)
	f.Dots, f.HorizontalWidth, f.VerticalHeight = cross(p)

	wordOpacities(f.IntroWords, p, IntroWordOpacity)
	wordOpacities(f.OutroWords, p, OutroWordOpacity)

	return f
}

// OnProgress is the scroll subscription callback: it computes the frame for
// p and hands it to the renderer, if any.
func (a *Animator) OnProgress(p float64) Frame {
	f := a.Frame(p)
	if a.renderer != nil {
		a.renderer.Render(f)
	}
	return f
}

func coverTransform(p float64) Transform {
	cp := ramp(p, coverStart, coverRate)
	return Transform{
		X:     0,
		Y:     0,
		Z:     coverStartZ + coverTravel*cp,
		Scale: min(1, cp*2),
	}
}

// cross returns the dot states and line extents in percent.
func cross(p float64) (dots [4]DotState, horizontal, vertical float64) {
	tp := ramp(p, crossStart, crossRate)

	for i, off := range DotOffsets {
		v := clamp01((tp - off) * dotRate)
		dots[i] = DotState{Opacity: v, Scale: v}
	}

	lp := max(0, tp-lineDelay)
	horizontal = min(100, lp*100)
	vertical = min(100, max(0, (lp-verticalDelay)*100))
	return dots, horizontal, vertical
}
