package spotlight

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default headline copy.
const (
	DefaultIntroHeadline = "Precision in every detail"
	DefaultOutroHeadline = "Let's build something remarkable"
)

// ErrInvalidPreset is returned when a preset document cannot drive an animator.
var ErrInvalidPreset = errors.New("invalid spotlight preset")

// Preset is the content that parameterizes the section: where images fly and
// what the headlines say.
type Preset struct {
	Name          string          `yaml:"name"           json:"name"`
	IntroHeadline string          `yaml:"intro_headline" json:"intro_headline"`
	OutroHeadline string          `yaml:"outro_headline" json:"outro_headline"`
	Targets       []ScatterTarget `yaml:"targets"        json:"targets"`
}

// DefaultPreset returns the built-in preset. The targets slice is a copy.
func DefaultPreset() Preset {
	return Preset{
		Name:          "default",
		IntroHeadline: DefaultIntroHeadline,
		OutroHeadline: DefaultOutroHeadline,
		Targets:       append([]ScatterTarget(nil), DefaultScatterTargets...),
	}
}

// Layout returns the element layout the preset describes.
func (p Preset) Layout() Layout {
	return Layout{
		Images:     len(p.Targets),
		IntroWords: SplitWords(p.IntroHeadline),
		OutroWords: SplitWords(p.OutroHeadline),
	}
}

// NewAnimator builds an animator for the preset in viewport.
func (p Preset) NewAnimator(viewport Viewport, opts ...Option) (*Animator, error) {
	opts = append([]Option{WithScatterTargets(p.Targets)}, opts...)
	return NewAnimator(viewport, p.Layout(), opts...)
}

// LoadPreset decodes a YAML preset. Missing headlines fall back to the
// defaults; a preset without targets is rejected.
func LoadPreset(r io.Reader) (Preset, error) {
	var p Preset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return Preset{}, fmt.Errorf("%w: empty document", ErrInvalidPreset)
		}
		return Preset{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	if len(p.Targets) == 0 {
		return Preset{}, fmt.Errorf("%w: no scatter targets", ErrInvalidPreset)
	}
	if p.IntroHeadline == "" {
		p.IntroHeadline = DefaultIntroHeadline
	}
	if p.OutroHeadline == "" {
		p.OutroHeadline = DefaultOutroHeadline
	}
	return p, nil
}

// LoadPresetFile reads a preset from path. An empty path yields DefaultPreset.
func LoadPresetFile(path string) (Preset, error) {
	if path == "" {
		return DefaultPreset(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return Preset{}, fmt.Errorf("failed to open preset: %w", err)
	}
	defer func() { _ = f.Close() }()

	p, err := LoadPreset(f)
	if err != nil {
		return Preset{}, fmt.Errorf("failed to load preset %s: %w", path, err)
	}
	return p, nil
}
