package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/curl2strm/curl2strm/pkg/ir"
	"github.com/google/uuid"
)

// valueFlags are curl flags known to consume the following token. Their
// values are irrelevant to stream conversion but must not be mistaken
// for the URL.
var valueFlags = map[string]bool{
	"-X": true, "--request": true,
	"-d": true, "--data": true, "--data-raw": true, "--data-binary": true, "--data-urlencode": true,
	"-b": true, "--cookie": true,
	"-u": true, "--user": true,
	"-A": true, "--user-agent": true,
	"-e": true, "--referer": true,
	"-x": true, "--proxy": true,
	"-m": true, "--max-time": true,
	"-o": true, "--output": true,
	"-r": true, "--range": true,
	"-F": true, "--form": true,
	"-T": true, "--upload-file": true,
	"--connect-timeout": true,
	"--max-redirs":      true,
	"--retry":           true,
}

// boolFlags are curl flags known to take no value
var boolFlags = map[string]bool{
	"-k": true, "--insecure": true,
	"-L": true, "--location": true,
	"-s": true, "--silent": true,
	"-v": true, "--verbose": true,
	"-f": true, "--fail": true,
	"-G": true, "--get": true,
	"-I": true, "--head": true,
	"-g": true, "--globoff": true,
	"--compressed": true,
}

// CurlParser converts captured curl commands to the structured request form
type CurlParser struct{}

// NewCurlParser creates a new curl parser
func NewCurlParser() *CurlParser {
	return &CurlParser{}
}

// Parse extracts the URL and headers from a curl command string.
//
// Header flags are recognized as `-H value`, `--header value`, `-Hvalue`
// and `--header=value`. Every other flag is consumed and ignored. The
// first remaining non-flag token is taken as the URL.
func (p *CurlParser) Parse(curlCmd string) (*ir.IR, error) {
	tokens, err := Tokenize(curlCmd)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}

	result := &ir.IR{
		Version: ir.Version,
		Metadata: &ir.Metadata{
			ID:        uuid.New().String(),
			Source:    "curl",
			CreatedAt: timePtr(time.Now()),
		},
	}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		v := tok.Value

		// Skip the command name itself
		if v == "curl" && !tok.Quoted {
			i++
			continue
		}

		if !tok.Quoted && strings.HasPrefix(v, "-") {
			switch {
			case v == "-H" || v == "--header":
				if i+1 >= len(tokens) {
					return nil, newParseError(ErrMalformedHeader, v)
				}
				if err := addHeader(tokens[i+1].Value, &result.Request); err != nil {
					return nil, err
				}
				i += 2

			case strings.HasPrefix(v, "--header="):
				if err := addHeader(strings.TrimPrefix(v, "--header="), &result.Request); err != nil {
					return nil, err
				}
				i++

			case strings.HasPrefix(v, "-H") && len(v) > len("-H"):
				if err := addHeader(v[len("-H"):], &result.Request); err != nil {
					return nil, err
				}
				i++

			case valueFlags[v]:
				i += 2 // flag plus its value

			case boolFlags[v]:
				i++

			default:
				// Unknown flag: assume it consumes the next token,
				// unless that token looks like the URL
				i++
				if i < len(tokens) && !strings.HasPrefix(tokens[i].Value, "-") && !urlLike(tokens[i].Value) {
					i++
				}
			}
			continue
		}

		if result.Request.URL == "" {
			result.Request.URL = v
		}
		i++
	}

	if result.Request.URL == "" {
		return nil, newParseError(ErrNoURLFound, "")
	}

	return result, nil
}

// addHeader splits a raw "Name: value" pair on the first colon. Name
// casing is preserved; surrounding whitespace is trimmed.
func addHeader(raw string, req *ir.Request) error {
	name, value, ok := strings.Cut(raw, ":")
	if !ok {
		return newParseError(ErrMalformedHeader, raw)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return newParseError(ErrMalformedHeader, raw)
	}
	req.Headers = req.Headers.Set(name, strings.TrimSpace(value))
	return nil
}

func urlLike(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func timePtr(t time.Time) *time.Time {
	return &t
}
