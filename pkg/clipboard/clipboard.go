// Package clipboard reads the captured curl command from the system
// clipboard when none is given on the command line.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrEmpty is returned when the clipboard holds no text
var ErrEmpty = errors.New("clipboard is empty; provide a curl command or copy one first")

// Read returns the trimmed clipboard text
func Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmpty
	}
	return text, nil
}
