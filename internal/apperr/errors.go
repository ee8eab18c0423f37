// Package apperr holds the error taxonomy shared by the gateway, the cache,
// the auth layer and the HTTP handlers.
package apperr

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when a mutation for the same record is already running.
var ErrBusy = errors.New("mutation already in progress")

type ValidationError struct {
	Field   string
	Message string
	Fields  FieldErrors
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Message: msg, Fields: FieldErrors{field: {msg}}}
}

// FieldErrors collects per-field messages before a single ValidationError is returned.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Err returns nil when nothing was added.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return &ValidationError{Message: "validation error", Fields: e}
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// AuthError never carries the underlying cause to the client; Reason is for logs.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth: " + e.Reason
}

func Auth(reason string) error {
	return &AuthError{Reason: reason}
}

// GatewayError wraps any backend failure that is not a validation or lookup miss.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

func Gateway(op string, err error) error {
	if err == nil {
		return nil
	}
	var ge *GatewayError
	if errors.As(err, &ge) {
		return err
	}
	return &GatewayError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsAuth(err error) bool {
	var e *AuthError
	return errors.As(err, &e)
}

func IsGateway(err error) bool {
	var e *GatewayError
	return errors.As(err, &e)
}

// Public is the message safe to show in the UI. Backend failures are reduced
// to a generic text; their details belong in the logs.
func Public(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBusy):
		return ErrBusy.Error()
	case IsValidation(err), IsNotFound(err):
		return err.Error()
	case IsAuth(err):
		return "unauthorized"
	default:
		return "backend request failed"
	}
}
