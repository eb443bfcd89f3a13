// Package apperr defines the error kinds surfaced by dock, ship and hauler
// operations. Callers branch on Kind, never on message text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation.
type Kind string

const (
	KindValidation        Kind = "VALIDATION"
	KindNotFound          Kind = "NOT_FOUND"
	KindCapacityViolation Kind = "CAPACITY_VIOLATION"
	KindOccupied          Kind = "OCCUPIED"
	KindStore             Kind = "STORE"
)

// Error carries a Kind, a client-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, apperr.ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrCapacityViolation = &Error{Kind: KindCapacityViolation}
	ErrOccupied          = &Error{Kind: KindOccupied}
	ErrStore             = &Error{Kind: KindStore}
)

func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func CapacityViolation(format string, args ...any) error {
	return &Error{Kind: KindCapacityViolation, Message: fmt.Sprintf(format, args...)}
}

func Occupied(format string, args ...any) error {
	return &Error{Kind: KindOccupied, Message: fmt.Sprintf(format, args...)}
}

// Store wraps a persistence failure. The original message is kept.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Kind: KindStore, Message: op, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindStore
// for anything unclassified.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindStore
}
