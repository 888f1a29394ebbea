package parser

import (
	"errors"
	"fmt"
)

// Sentinel parse failures. Callers classify with errors.Is.
var (
	// ErrUnterminatedQuote is returned when the command ends inside an
	// open quote
	ErrUnterminatedQuote = errors.New("unterminated quote")

	// ErrNoURLFound is returned when no URL argument is present
	ErrNoURLFound = errors.New("no URL found in curl command")

	// ErrMalformedHeader is returned for a header flag without a
	// parsable name:value pair
	ErrMalformedHeader = errors.New("malformed header")
)

// ParseError carries the failure kind plus the offending input fragment
type ParseError struct {
	Err     error  // one of the sentinels above
	Snippet string // offending fragment, may be empty
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Snippet == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(kind error, snippet string) *ParseError {
	return &ParseError{Err: kind, Snippet: snippet}
}
