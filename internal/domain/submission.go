package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names a submission field as it appears on the wire.
type Field string

// Submission fields.
const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists every submission field in reading order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

// MinMessageLength is the shortest message accepted, in characters.
const MinMessageLength = 10

// Field error messages shown beside the offending input.
const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgMessageRequired = "Message is required"
	MsgMessageTooShort = "Message must be at least 10 characters long"
)

// emailPattern is a loose local@domain.tld check. RE2's \s is ASCII only, so
// the class also excludes \v, Unicode separators and the BOM to match what a
// browser treats as whitespace.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// Submission is one contact form payload. It is validated and forwarded,
// never stored.
type Submission struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,contact_email"`
	Message string `json:"message" validate:"required,min=10"`
}

// Normalize returns a copy with surrounding whitespace trimmed from every field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

// ValidationResult reports whether a submission passed and, if not, one
// message per invalid field.
type ValidationResult struct {
	Valid  bool
	Errors map[Field]string
}

// Err converts a failed result into a *ValidationError; nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Fields: r.Errors}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json names so errors key directly into Field.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register contact_email validation: %v", err))
	}

	return v
}

// IsValidEmail reports whether addr passes the contact form email check.
func IsValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// ValidateSubmission trims s and checks it against the contact form rules.
// The same rules run in the client before sending and in the handler on
// receipt.
func ValidateSubmission(s Submission) ValidationResult {
	s = s.Normalize()

	result := ValidationResult{Valid: true, Errors: map[Field]string{}}

	err := validate.Struct(s)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable with a broken struct tag.
		panic(fmt.Sprintf("unexpected validation error: %v", err))
	}

	result.Valid = false
	for _, fe := range fieldErrs {
		field := Field(fe.Field())
		result.Errors[field] = fieldMessage(field, fe.Tag())
	}
	return result
}

func fieldMessage(field Field, tag string) string {
	switch field {
	case FieldName:
		return MsgNameRequired
	case FieldEmail:
		if tag == "required" {
			return MsgEmailRequired
		}
		return MsgEmailInvalid
	case FieldMessage:
		if tag == "required" {
			return MsgMessageRequired
		}
		return MsgMessageTooShort
	default:
		return fmt.Sprintf("Invalid %s", field)
	}
}

// ValidationError carries per-field validation messages.
type ValidationError struct {
	Fields map[Field]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range Fields {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
		}
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, "; "))
}

// Unwrap lets callers match ErrValidation with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// First returns the message of the first invalid field in reading order.
func (e *ValidationError) First() string {
	for _, f := range Fields {
		if msg, ok := e.Fields[f]; ok {
			return msg
		}
	}
	return ErrValidation.Error()
}
