package internal

import (
	"fmt"
	"io"
	"strings"
)

// Logf writes a single prefixed log line, used by verbose client output.
func Logf(w io.Writer, prefix string, format string, a ...any) {
	parts := []string{}
	if prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, fmt.Sprintf(format, a...))
	fmt.Fprintln(w, strings.Join(parts, " "))
}
