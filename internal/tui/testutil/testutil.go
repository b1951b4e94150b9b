package testutil

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/golden"
)

// RequireGolden compares output with a golden file using golden.RequireEqual().
func RequireGolden(t *testing.T, output string) {
	t.Helper()
	golden.RequireEqual(t, []byte(output))
}

// StripANSI removes ANSI escape codes from content.
func StripANSI(content string) string {
	return ansi.Strip(content)
}
