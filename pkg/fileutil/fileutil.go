// Package fileutil writes the rendered outputs to disk and keeps file
// names safe across platforms.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

const fallbackBaseName = "output"

// SanitizeBaseName strips any extension from name and replaces the
// characters Windows and most filesystems reject. An empty result falls
// back to "output".
func SanitizeBaseName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	var b strings.Builder
	for _, r := range base {
		switch r {
		case '\\', '/', '*', '?', ':', '"', '<', '>', '|':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	cleaned := strings.TrimSpace(b.String())
	if cleaned == "" {
		return fallbackBaseName
	}
	return cleaned
}

// WriteText writes content to path with regular file permissions
func WriteText(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// WriteScript writes content to path, marking it executable when asked.
// Platforms without POSIX permissions ignore the mode.
func WriteScript(path, content string, executable bool) error {
	mode := os.FileMode(0o644)
	if executable {
		mode = 0o755
	}
	return os.WriteFile(path, []byte(content), mode)
}
