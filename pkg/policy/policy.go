// Package policy decides which captured headers are propagated into the
// generated stream descriptor and downloader script.
package policy

import (
	"strings"

	"github.com/curl2strm/curl2strm/pkg/ir"
)

// DefaultAllowed is the header allow-list applied when no override is
// configured. These are the headers stream hosts typically require for
// playback.
var DefaultAllowed = []string{"cookie", "origin", "referer", "user-agent"}

// Policy holds the header allow-list. The zero value allows nothing;
// use Default for the standard list.
type Policy struct {
	allowed map[string]bool
}

// Default returns a policy with the standard allow-list
func Default() *Policy {
	return New(DefaultAllowed)
}

// New returns a policy allowing exactly the given header names
// (case-insensitive)
func New(names []string) *Policy {
	p := &Policy{allowed: make(map[string]bool, len(names))}
	for _, n := range names {
		p.allowed[strings.ToLower(strings.TrimSpace(n))] = true
	}
	return p
}

// Filter returns the headers that pass the policy, preserving order.
// With includeAll set, every header passes through unchanged.
func (p *Policy) Filter(headers ir.Headers, includeAll bool) ir.Headers {
	if includeAll {
		return headers
	}
	var out ir.Headers
	for _, h := range headers {
		if p.allowed[strings.ToLower(h.Name)] {
			out = append(out, h)
		}
	}
	return out
}

// Allows reports whether a single header name passes the policy
func (p *Policy) Allows(name string) bool {
	return p.allowed[strings.ToLower(name)]
}
