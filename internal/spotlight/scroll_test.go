package spotlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollRegion_Progress(t *testing.T) {
	r := NewScrollRegion(500, Viewport{Width: 1280, Height: 800})
	assert.Equal(t, 4800.0, r.Length)

	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{name: "above region", offset: 0, want: 0},
		{name: "at top", offset: 500, want: 0},
		{name: "half way", offset: 2900, want: 0.5},
		{name: "at end", offset: 5300, want: 1},
		{name: "past end", offset: 9000, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, r.Progress(tc.offset), 1e-9)
		})
	}
}

func TestScrollRegion_Offset(t *testing.T) {
	r := ScrollRegion{Top: 100, Length: 1000}
	assert.Equal(t, 600.0, r.Offset(0.5))
	assert.Equal(t, 1100.0, r.Offset(3))
	assert.InDelta(t, 0.25, r.Progress(r.Offset(0.25)), 1e-9)
}

func TestScrollRegion_ZeroLength(t *testing.T) {
	r := ScrollRegion{Top: 100}
	assert.Equal(t, 0.0, r.Progress(99))
	assert.Equal(t, 1.0, r.Progress(100))
}

func TestProgressWindow(t *testing.T) {
	w := ProgressWindow{Start: 0.2, End: 0.4}
	assert.InDelta(t, 0.2, w.Span(), 1e-9)
	assert.Equal(t, 0.0, w.Local(0.1))
	assert.InDelta(t, 0.5, w.Local(0.3), 1e-9)
	assert.InDelta(t, 2.0, w.Local(0.6), 1e-9)
	assert.Equal(t, 1.0, w.Clamped(0.6))
	assert.True(t, w.Contains(0.3))
	assert.False(t, w.Contains(0.5))

	step := ProgressWindow{Start: 0.5, End: 0.5}
	assert.Equal(t, 0.0, step.Local(0.5))
	assert.Equal(t, 1.0, step.Local(0.51))
}
