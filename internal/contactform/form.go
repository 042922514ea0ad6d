package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/phrazzld/spotlight-site/internal/domain"
)

// Feedback texts used when the server gives none.
const (
	DefaultSuccessMessage = "Message sent successfully! We'll get back to you soon."
	DefaultErrorMessage   = "There was an error sending your message."
	NetworkErrorMessage   = "Sorry, there was an error sending your message. Please try again."
)

// Submit control labels.
const (
	DefaultSubmitLabel = "Send Message"
	SendingLabel       = "Sending..."
)

// SuccessFeedbackTTL is how long success feedback stays visible.
const SuccessFeedbackTTL = 5 * time.Second

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 64 << 10

var (
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submission has not finished.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrRejected is returned when the server answers with a failure.
	ErrRejected = errors.New("submission rejected")
)

// FeedbackKind distinguishes the two feedback styles.
type FeedbackKind string

// Feedback kinds.
const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackError   FeedbackKind = "error"
)

// Feedback is the single message shown beneath the submit control.
type Feedback struct {
	Kind    FeedbackKind
	Message string
}

// State is a snapshot of everything the visitor can see.
type State struct {
	Values      domain.Submission
	FieldErrors map[domain.Field]string
	Feedback    *Feedback
	Submitting  bool
	SubmitLabel string
}

// Form is the contact form.
type Form struct {
	mu          sync.Mutex
	values      domain.Submission
	fieldErrors map[domain.Field]string
	feedback    *Feedback
	feedbackGen uint64
	submitting  bool

	endpoint    string
	submitLabel string
	client      *http.Client
	afterFunc   func(time.Duration, func())
	logger      *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithHTTPClient sets the client used to post submissions.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) {
		f.client = c
	}
}

// WithAfterFunc replaces time.AfterFunc for scheduling the feedback clear.
// fn may be run inline; it is never called with the form locked.
func WithAfterFunc(fn func(time.Duration, func())) Option {
	return func(f *Form) {
		f.afterFunc = fn
	}
}

// WithSubmitLabel sets the idle label of the submit control.
func WithSubmitLabel(label string) Option {
	return func(f *Form) {
		f.submitLabel = label
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		f.logger = l
	}
}

// New creates a form that posts to endpoint.
func New(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint:    endpoint,
		submitLabel: DefaultSubmitLabel,
		client:      &http.Client{Timeout: 15 * time.Second},
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "contact_form")
	return f
}

// Set stores the raw value typed into field.
func (f *Form) Set(field domain.Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case domain.FieldName:
		f.values.Name = value
	case domain.FieldEmail:
		f.values.Email = value
	case domain.FieldMessage:
		f.values.Message = value
	}
}

// Fill sets all three fields at once.
func (f *Form) Fill(s domain.Submission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = s
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := State{
		Values:      f.values,
		FieldErrors: make(map[domain.Field]string, len(f.fieldErrors)),
		Submitting:  f.submitting,
		SubmitLabel: f.submitLabel,
	}
	for k, v := range f.fieldErrors {
		st.FieldErrors[k] = v
	}
	if f.feedback != nil {
		fb := *f.feedback
		st.Feedback = &fb
	}
	if f.submitting {
		st.SubmitLabel = SendingLabel
	}
	return st
}

// Submit validates the current values and, if they pass, posts them. The
// returned error is a *domain.ValidationError when validation fails (no
// request is made), ErrSubmitInFlight when a submission is running, wraps
// ErrRejected when the server refused, or is the transport error.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}

	f.fieldErrors = nil
	f.clearFeedbackLocked()

	sub := f.values.Normalize()
	result := domain.ValidateSubmission(sub)
	if !result.Valid {
		f.fieldErrors = result.Errors
		f.mu.Unlock()
		return result.Err()
	}

	f.submitting = true
	f.mu.Unlock()

	resp, err := f.post(ctx, sub)

	f.mu.Lock()
	f.submitting = false

	var schedule func()
	switch {
	case err != nil:
		f.logger.Warn("contact submission failed", "error", err)
		f.setFeedbackLocked(FeedbackError, NetworkErrorMessage)

	case !resp.ok():
		msg := resp.Error
		if msg == "" {
			msg = DefaultErrorMessage
		}
		f.setFeedbackLocked(FeedbackError, msg)
		err = fmt.Errorf("%w: status %d: %s", ErrRejected, resp.status, msg)

	default:
		msg := resp.Message
		if msg == "" {
			msg = DefaultSuccessMessage
		}
		f.values = domain.Submission{}
		schedule = f.setFeedbackLocked(FeedbackSuccess, msg)
	}
	f.mu.Unlock()

	// The clear runs outside the lock so an afterFunc may call it inline.
	if schedule != nil {
		schedule()
	}
	return err
}

// response is the union of the endpoint's success and error bodies.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
	Error   string `json:"error"`

	status int
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300 && r.Success
}

func (f *Form) post(ctx context.Context, sub domain.Submission) (*response, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to post submission: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	var out response
	if err := json.NewDecoder(io.LimitReader(res.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", res.StatusCode, err)
	}
	out.status = res.StatusCode
	return &out, nil
}

// setFeedbackLocked replaces the feedback. For success feedback it returns
// a func that schedules the auto-clear; the caller runs it after releasing
// f.mu. The clear is skipped if newer feedback has replaced this one.
func (f *Form) setFeedbackLocked(kind FeedbackKind, msg string) func() {
	f.feedbackGen++
	f.feedback = &Feedback{Kind: kind, Message: msg}

	if kind != FeedbackSuccess {
		return nil
	}
	gen := f.feedbackGen
	return func() {
		f.afterFunc(SuccessFeedbackTTL, func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if f.feedbackGen == gen {
				f.feedback = nil
			}
		})
	}
}

func (f *Form) clearFeedbackLocked() {
	f.feedbackGen++
	f.feedback = nil
}
