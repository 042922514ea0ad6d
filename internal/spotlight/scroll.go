package spotlight

// PinMultiplier is the pinned scroll length in viewport heights.
const PinMultiplier = 6

// ScrollRegion is the pinned stretch of the page that drives the animator.
type ScrollRegion struct {
	Top    float64
	Length float64
}

// NewScrollRegion pins a region starting at top for a viewport.
func NewScrollRegion(top float64, viewport Viewport) ScrollRegion {
	return ScrollRegion{Top: top, Length: viewport.Height * PinMultiplier}
}

// Progress converts an absolute scroll offset into progress in [0,1].
// A region with no length reports 0 before Top and 1 from Top onwards.
func (r ScrollRegion) Progress(offset float64) float64 {
	if r.Length <= 0 {
		if offset < r.Top {
			return 0
		}
		return 1
	}
	return clamp01((offset - r.Top) / r.Length)
}

// Offset is the inverse of Progress for p in [0,1].
func (r ScrollRegion) Offset(p float64) float64 {
	return r.Top + clamp01(p)*r.Length
}
