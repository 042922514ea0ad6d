package spotlight

// ProgressWindow is a sub-range of overall progress during which one effect
// runs. Windows are static; Start < End is expected but not enforced.
type ProgressWindow struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end"   yaml:"end"`
}

// Span is End - Start.
func (w ProgressWindow) Span() float64 {
	return w.End - w.Start
}

// Local maps p into the window's own 0..1 scale without clamping above.
// Values before Start map to 0. A degenerate window behaves as a step at Start.
func (w ProgressWindow) Local(p float64) float64 {
	if p <= w.Start {
		return 0
	}
	span := w.Span()
	if span <= 0 {
		return 1
	}
	return (p - w.Start) / span
}

// Clamped is Local limited to [0,1].
func (w ProgressWindow) Clamped(p float64) float64 {
	return clamp01(w.Local(p))
}

// Contains reports whether p lies inside the closed window.
func (w ProgressWindow) Contains(p float64) bool {
	return p >= w.Start && p <= w.End
}

// Timing constants for the spotlight section.
const (
	// ImageStagger delays image i by i*ImageStagger.
	ImageStagger = 0.03
	// ImageRate converts overall progress into image-local progress.
	ImageRate = 4.0

	coverStart = 0.7
	coverRate  = 4.0

	crossStart = 0.72
	crossRate  = 8.0

	// lineDelay is the cross-local progress at which the lines start, after
	// the first dots have appeared.
	lineDelay = 0.2
	// verticalDelay stacks on lineDelay, so the vertical stroke starts 0.4
	// into the cross window.
	verticalDelay = 0.2

	dotRate = 4.0

	introFadeStart   = 0.68
	introFadeSpan    = 0.1
	outroRevealStart = 0.8
	outroRevealSpan  = 0.15

	// wordFadeWidth is each word's share of its headline's local window.
	wordFadeWidth = 0.1
)

// Static windows.
var (
	CoverWindow       = ProgressWindow{Start: coverStart, End: coverStart + 1/coverRate}
	CrossWindow       = ProgressWindow{Start: crossStart, End: crossStart + 1/crossRate}
	IntroFadeWindow   = ProgressWindow{Start: introFadeStart, End: introFadeStart + introFadeSpan}
	OutroRevealWindow = ProgressWindow{Start: outroRevealStart, End: outroRevealStart + outroRevealSpan}
)

// DotOffsets are the cross-local start times of the corner dots, clockwise
// from top-left.
var DotOffsets = [4]float64{0, 0.15, 0.3, 0.45}

// ImageWindow returns the window driving image i.
func ImageWindow(i int) ProgressWindow {
	start := float64(i) * ImageStagger
	return ProgressWindow{Start: start, End: start + 1/ImageRate}
}

// ramp is max(0, (p-start)*rate), the shape every effect uses.
func ramp(p, start, rate float64) float64 {
	v := (p - start) * rate
	if v < 0 {
		return 0
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
