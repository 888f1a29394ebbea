package render

import (
	"fmt"
	"strings"

	"github.com/curl2strm/curl2strm/pkg/ir"
)

// Script renders a one-line yt-dlp invocation reproducing the request,
// wrapped in the preamble and quoting conventions of the chosen dialect.
// The argument list is identical across dialects.
func Script(req ir.Request, title string, dialect Dialect) (string, error) {
	args := ytdlpArgs(req, title)
	switch dialect {
	case DialectSh:
		return "#!/bin/sh\n" + joinArgs(args, shQuote) + "\n", nil
	case DialectBat:
		return "@echo off\r\n" + joinArgs(args, batQuote) + "\r\n", nil
	case DialectPs1:
		return "# PowerShell script\r\n" + joinArgs(args, psQuote) + "\r\n", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}

// ytdlpArgs builds the downloader argument list shared by every dialect:
// one --add-header per header in declared order, the URL, and an output
// template leaving the extension for yt-dlp to fill in.
func ytdlpArgs(req ir.Request, title string) []string {
	args := []string{"yt-dlp"}
	for _, h := range req.Headers {
		args = append(args, "--add-header", h.Name+": "+h.Value)
	}
	args = append(args, req.URL)
	if title != "" {
		args = append(args, "-o", title+".%(ext)s")
	}
	return args
}

// joinArgs quotes every value argument with the dialect's quote function.
// The program name and flags stay bare.
func joinArgs(args []string, quote func(string) string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if i == 0 || strings.HasPrefix(a, "-") {
			parts[i] = a
			continue
		}
		parts[i] = quote(a)
	}
	return strings.Join(parts, " ")
}

func shQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func batQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
