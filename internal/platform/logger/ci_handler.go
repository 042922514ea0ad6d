package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ciEnvVars are copied into every record when present.
var ciEnvVars = map[string]string{
	"GITHUB_RUN_ID":         "ci_run_id",
	"GITHUB_SHA":            "ci_commit",
	"GITHUB_REF_NAME":       "ci_ref",
	"GITHUB_WORKFLOW":       "ci_workflow",
	"VERCEL_GIT_COMMIT_SHA": "deploy_commit",
	"VERCEL_ENV":            "deploy_env",
}

// CIHandler is a custom slog.Handler that adds CI and deployment metadata
// to log records.
type CIHandler struct {
	// The underlying handler (usually JSON)
	handler slog.Handler
	// Metadata to add to every log record
	metadata map[string]string
}

// NewCIHandler creates a new CIHandler that wraps a JSON handler writing to out.
func NewCIHandler(out io.Writer, opts *slog.HandlerOptions) *CIHandler {
	return newCIHandler(slog.NewJSONHandler(out, opts), ciMetadata(os.LookupEnv))
}

func newCIHandler(h slog.Handler, metadata map[string]string) *CIHandler {
	return &CIHandler{handler: h, metadata: metadata}
}

// ciMetadata collects the metadata using lookup, normally os.LookupEnv.
func ciMetadata(lookup func(string) (string, bool)) map[string]string {
	md := make(map[string]string)
	if _, ok := lookup("CI"); ok {
		md["ci"] = "true"
	}
	for env, key := range ciEnvVars {
		if v, ok := lookup(env); ok && v != "" {
			md[key] = v
		}
	}
	return md
}

// Enabled implements the slog.Handler interface.
func (h *CIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *CIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newCIHandler(h.handler.WithAttrs(attrs), h.metadata)
}

// WithGroup implements the slog.Handler interface.
func (h *CIHandler) WithGroup(name string) slog.Handler {
	return newCIHandler(h.handler.WithGroup(name), h.metadata)
}

// Handle implements the slog.Handler interface.
func (h *CIHandler) Handle(ctx context.Context, record slog.Record) error {
	enhanced := record.Clone()
	for key, value := range h.metadata {
		enhanced.AddAttrs(slog.String(key, value))
	}
	return h.handler.Handle(ctx, enhanced)
}
