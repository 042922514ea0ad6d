package api

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/spotlight-site/internal/api/shared"
	"github.com/phrazzld/spotlight-site/internal/spotlight"
)

// Default preview viewport, used when the query omits one.
const (
	DefaultPreviewWidth  = 1440.0
	DefaultPreviewHeight = 900.0
)

// MsgInvalidFrameQuery is returned for unusable preview parameters.
const MsgInvalidFrameQuery = "progress, width and height must be valid numbers"

var errInvalidQuery = errors.New("invalid query parameter")

// FrameQuery holds the parsed preview parameters.
type FrameQuery struct {
	Progress float64 `validate:"gte=-1,lte=2"`
	Width    float64 `validate:"gt=0,lte=10000"`
	Height   float64 `validate:"gt=0,lte=10000"`
}

// SpotlightHandler serves frame previews of the spotlight section so
// renderers and visual tests can inspect the animation without a browser.
type SpotlightHandler struct {
	preset    spotlight.Preset
	validator *validator.Validate
	logger    *slog.Logger
}

// NewSpotlightHandler creates a handler serving frames for preset.
func NewSpotlightHandler(preset spotlight.Preset, logger *slog.Logger) *SpotlightHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpotlightHandler{
		preset:    preset,
		validator: validator.New(),
		logger:    logger.With("component", "spotlight_handler"),
	}
}

// Frame handles GET /api/spotlight/frame?progress=&width=&height=.
func (h *SpotlightHandler) Frame(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidFrameQuery, err)
		return
	}

	a, err := h.preset.NewAnimator(spotlight.Viewport{Width: q.Width, Height: q.Height})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError, err)
		return
	}

	h.logger.Debug("rendering preview frame",
		"progress", q.Progress,
		"width", q.Width,
		"height", q.Height)

	shared.RespondWithJSON(w, r, http.StatusOK, a.Frame(q.Progress))
}

func (h *SpotlightHandler) parseQuery(r *http.Request) (FrameQuery, error) {
	values := r.URL.Query()
	q := FrameQuery{Width: DefaultPreviewWidth, Height: DefaultPreviewHeight}

	raw := values.Get("progress")
	if raw == "" {
		return q, fmt.Errorf("%w: progress is required", errInvalidQuery)
	}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"progress", &q.Progress},
		{"width", &q.Width},
		{"height", &q.Height},
	}
	for _, f := range fields {
		s := values.Get(f.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return q, fmt.Errorf("%w: %s=%q", errInvalidQuery, f.name, s)
		}
		*f.dst = v
	}

	if err := h.validator.Struct(q); err != nil {
		return q, fmt.Errorf("%w: %w", errInvalidQuery, err)
	}
	return q, nil
}
