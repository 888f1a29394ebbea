package ir

import (
	"strings"
	"time"
)

// Version represents the parse result schema version
const Version = "1.0"

// IR represents the structured form of a captured curl invocation
type IR struct {
	Version  string    `json:"version"`
	Metadata *Metadata `json:"metadata,omitempty"`
	Request  Request   `json:"request"`
}

// Metadata contains conversion metadata. Informational only; it never
// flows into rendered output.
type Metadata struct {
	ID        string     `json:"id,omitempty"`
	Source    string     `json:"source,omitempty"` // curl, clipboard
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Request represents the target URL plus the headers that reproduce it
type Request struct {
	URL     string  `json:"url"`
	Headers Headers `json:"headers,omitempty"`
}

// Header is a single name/value pair. Name casing is preserved as written
// in the source command; lookups are case-insensitive.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Headers is an ordered header list. A plain map would lose declaration
// order, which downstream rendering depends on.
type Headers []Header

// Get returns the value for name (case-insensitive) and whether it exists
func (h Headers) Get(name string) (string, bool) {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return hdr.Value, true
		}
	}
	return "", false
}

// Set appends a header, or overwrites the value in place if the name is
// already present, keeping the first occurrence's position and casing
func (h Headers) Set(name, value string) Headers {
	for i, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			h[i].Value = value
			return h
		}
	}
	return append(h, Header{Name: name, Value: value})
}

// Names returns the header names in declaration order
func (h Headers) Names() []string {
	names := make([]string, len(h))
	for i, hdr := range h {
		names[i] = hdr.Name
	}
	return names
}
