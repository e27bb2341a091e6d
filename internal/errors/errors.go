package errors

import (
	"errors"
	"net/http"
)

// Error kinds. Match with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrRateLimited  = errors.New("rate limited")
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	Kind       error
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func (e *ErrorWithStatusCode) Unwrap() error {
	return e.Kind
}

func Validation(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest, Kind: ErrValidation}
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound, Kind: ErrNotFound}
}

func Conflict(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict, Kind: ErrConflict}
}

func Unauthorized(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized, Kind: ErrUnauthorized}
}

func Forbidden(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden, Kind: ErrForbidden}
}

func RateLimited(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusTooManyRequests, Kind: ErrRateLimited}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// StatusCode returns the HTTP status carried by err, 500 if none.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
