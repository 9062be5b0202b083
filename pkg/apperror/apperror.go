package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error so handlers can pick the right HTTP status.
type Kind int

const (
	Unknown Kind = iota
	BadRequest
	Unauthorized
	Forbidden
	NotFound
	Conflict
	InvalidCredentials
	Database
	Internal
	Config
)

// AppError carries a user-facing message plus an optional wrapped cause.
// Only Message is ever shown to clients; the cause stays in logs.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusCode maps the error kind to an HTTP status.
// InvalidCredentials is a 400, not a 401: the request was authenticated
// incorrectly, not unauthenticated.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case BadRequest, InvalidCredentials:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewBadRequest(message string, err error) *AppError { return New(BadRequest, message, err) }
func NewUnauthorized(message string, err error) *AppError {
	return New(Unauthorized, message, err)
}
func NewForbidden(message string, err error) *AppError { return New(Forbidden, message, err) }
func NewNotFound(message string, err error) *AppError  { return New(NotFound, message, err) }
func NewConflict(message string, err error) *AppError  { return New(Conflict, message, err) }
func NewInvalidCredentials(message string, err error) *AppError {
	return New(InvalidCredentials, message, err)
}
func NewDatabase(message string, err error) *AppError { return New(Database, message, err) }
func NewInternal(message string, err error) *AppError { return New(Internal, message, err) }
func NewConfig(message string, err error) *AppError   { return New(Config, message, err) }

// From extracts an *AppError from err's chain, if any.
func From(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func is(err error, kind Kind) bool {
	ae, ok := From(err)
	return ok && ae.Kind == kind
}

func IsNotFound(err error) bool  { return is(err, NotFound) }
func IsConflict(err error) bool  { return is(err, Conflict) }
func IsForbidden(err error) bool { return is(err, Forbidden) }
func IsInvalidCredentials(err error) bool {
	return is(err, InvalidCredentials)
}
