package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an operation-level failure.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindInvalidInput
	KindConflict
	KindNotFound
	KindForbidden
)

// FieldError describes a validation failure tied to one named input field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is the failure envelope every operation raises: a message, an HTTP
// status code and optional structured data. A zero Status means the failure
// was never coded and renders as 500.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Data    []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the attached status, defaulting to 500 when uncoded.
func (e *Error) StatusCode() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}

// Unauthenticated reports a missing or unusable identity.
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message, Status: http.StatusUnauthorized}
}

// InvalidInput reports failed validation along with the full field error list.
func InvalidInput(message string, fields []FieldError) *Error {
	return &Error{Kind: KindInvalidInput, Message: message, Status: http.StatusUnprocessableEntity, Data: fields}
}

// Conflict reports a pre-existing conflicting entity. No status is attached;
// the boundary renders it with the 500 default.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NotFound reports an absent entity.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Status: http.StatusNotFound}
}

// Forbidden reports an ownership check failure.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message, Status: http.StatusForbidden}
}

// Internal reports an uncoded fault.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message, Status: http.StatusInternalServerError}
}

// From extracts the *Error from err, or nil if err carries none.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	e := From(err)
	return e != nil && e.Kind == kind
}
