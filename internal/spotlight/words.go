package spotlight

import "strings"

// SplitWords breaks a headline into the words animated individually.
func SplitWords(headline string) []string {
	return strings.Fields(headline)
}

// wordStart is where word i of n begins its fade within the local window.
func wordStart(i, n int) float64 {
	return float64(i) / float64(n)
}

// IntroWordOpacity is the opacity of word i of n in the intro headline.
// Words are opaque before the fade window, transparent after it, and wipe
// out one after another in reading order inside it.
func IntroWordOpacity(p float64, i, n int) float64 {
	switch {
	case n <= 0:
		return 0
	case p < introFadeStart:
		return 1
	case p > introFadeStart+introFadeSpan:
		return 0
	}

	f := (p - introFadeStart) / introFadeSpan
	s := wordStart(i, n)
	switch {
	case f >= s+wordFadeWidth:
		return 0
	case f <= s:
		return 1
	default:
		return 1 - (f-s)/wordFadeWidth
	}
}

// OutroWordOpacity is the opacity of word i of n in the outro headline, the
// mirror of IntroWordOpacity: hidden before the window, revealed after it.
func OutroWordOpacity(p float64, i, n int) float64 {
	switch {
	case n <= 0:
		return 0
	case p < outroRevealStart:
		return 0
	case p > outroRevealStart+outroRevealSpan:
		return 1
	}

	f := (p - outroRevealStart) / outroRevealSpan
	s := wordStart(i, n)
	switch {
	case f >= s+wordFadeWidth:
		return 1
	case f <= s:
		return 0
	default:
		return (f - s) / wordFadeWidth
	}
}

// wordOpacities fills dst with fn for every word and returns it.
func wordOpacities(dst []float64, p float64, fn func(float64, int, int) float64) []float64 {
	n := len(dst)
	for i := range dst {
		dst[i] = fn(p, i, n)
	}
	return dst
}
