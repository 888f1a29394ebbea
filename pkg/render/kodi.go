package render

import (
	"net/url"
	"strings"

	"github.com/curl2strm/curl2strm/pkg/ir"
)

// Descriptor renders the .strm payload: the bare URL, or
// url|Name=value&Name2=value2 when headers are attached. Header names are
// written as-is; values are percent-encoded.
func Descriptor(req ir.Request) string {
	if len(req.Headers) == 0 {
		return req.URL
	}

	var b strings.Builder
	b.WriteString(req.URL)
	b.WriteByte('|')
	for i, h := range req.Headers {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(h.Name)
		b.WriteByte('=')
		b.WriteString(encodeValue(h.Value))
	}
	return b.String()
}

// encodeValue percent-encodes a header value for the descriptor suffix.
// QueryEscape writes spaces as '+', which Kodi does not decode; rewrite
// them to %20.
func encodeValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
