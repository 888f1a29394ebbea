// Package render serializes a parsed request into the Kodi stream
// descriptor and an optional downloader script. Rendering is pure string
// work; identical inputs always produce byte-identical output.
package render

import (
	"errors"
	"fmt"

	"github.com/curl2strm/curl2strm/pkg/ir"
)

// Dialect selects the companion script flavor
type Dialect string

const (
	DialectNone Dialect = ""
	DialectSh   Dialect = "sh"
	DialectBat  Dialect = "bat"
	DialectPs1  Dialect = "ps1"
)

// ErrUnknownDialect is returned for a script dialect this renderer does
// not know
var ErrUnknownDialect = errors.New("unknown script dialect")

// ParseDialect maps a user-supplied format name to a Dialect
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case DialectNone, DialectSh, DialectBat, DialectPs1:
		return Dialect(s), nil
	default:
		return DialectNone, fmt.Errorf("%w: %q", ErrUnknownDialect, s)
	}
}

// Ext returns the file extension for the dialect, including the dot
func (d Dialect) Ext() string {
	switch d {
	case DialectBat:
		return ".bat"
	case DialectPs1:
		return ".ps1"
	default:
		return ".sh"
	}
}

// Executable reports whether the written script should carry an
// executable file mode
func (d Dialect) Executable() bool {
	return d == DialectSh
}

// RenderRequest bundles everything one conversion needs. Headers are
// expected to be policy-filtered already.
type RenderRequest struct {
	Request ir.Request
	Title   string
	Dialect Dialect
}

// Output holds the rendered text blobs. Script is empty when no dialect
// was requested.
type Output struct {
	Descriptor string
	Script     string
}

// Render produces the descriptor and, when a dialect is requested, the
// downloader script
func Render(req RenderRequest) (Output, error) {
	out := Output{Descriptor: Descriptor(req.Request)}
	if req.Dialect != DialectNone {
		script, err := Script(req.Request, req.Title, req.Dialect)
		if err != nil {
			return Output{}, err
		}
		out.Script = script
	}
	return out, nil
}
