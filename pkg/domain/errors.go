package domain

import (
	"errors"
	"fmt"
)

// ErrNoItem is returned when the feed is valid but has no entries
var ErrNoItem = errors.New("no current item available")

// ErrKind classifies update cycle failures
type ErrKind string

// enum of cycle failure kinds
const (
	ErrKindTransport ErrKind = "transport"
	ErrKindStatus    ErrKind = "status"
	ErrKindParse     ErrKind = "parse"
	ErrKindAbsence   ErrKind = "absence"
	ErrKindIO        ErrKind = "io"
)

// CycleError is a failure of one update cycle step
type CycleError struct {
	Kind ErrKind
	Op   string
	Err  error
}

// NewCycleError makes CycleError for the given kind and operation
func NewCycleError(kind ErrKind, op string, err error) *CycleError {
	return &CycleError{Kind: kind, Op: op, Err: err}
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CycleError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first CycleError in err's chain, empty if none
func KindOf(err error) ErrKind {
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// StatusError reports a non-success http response
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.Code, e.URL)
}
