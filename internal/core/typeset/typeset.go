// Package typeset renders raw section bodies into styled terminal output.
// It is the editor's typesetting collaborator: rendering is best effort,
// and a failure never blocks or reverts the caller's mode.
package typeset

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/colonyops/texedit/internal/core/styles"
)

// StyleAuto derives the glamour style from the active TUI theme instead of
// a named builtin style.
const StyleAuto = "auto"

// Renderer typesets LaTeX-like bodies through glamour.
type Renderer struct {
	style string
}

// New creates a renderer using the given glamour style name, or the active
// theme's derived style when style is StyleAuto or empty.
func New(style string) *Renderer {
	if style == "" {
		style = StyleAuto
	}
	return &Renderer{style: style}
}

// Render typesets a single body at the given width.
func (r *Renderer) Render(body string, width int) (string, error) {
	tr, err := r.termRenderer(width)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	out, err := tr.Render(toMarkdown(body))
	if err != nil {
		return "", fmt.Errorf("typeset: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// Batch typesets every body in order. Bodies that fail keep their raw text
// so the caller can show partially typeset content; the first error is
// returned alongside the results.
func (r *Renderer) Batch(bodies []string, width int) ([]string, error) {
	out := make([]string, len(bodies))
	var firstErr error
	for i, body := range bodies {
		rendered, err := r.Render(body, width)
		if err != nil {
			out[i] = body
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out[i] = rendered
	}
	return out, firstErr
}

func (r *Renderer) termRenderer(width int) (*glamour.TermRenderer, error) {
	wrap := max(width, 20)
	if r.style == StyleAuto {
		return glamour.NewTermRenderer(
			glamour.WithStyles(styles.GlamourStyle()),
			glamour.WithWordWrap(wrap),
		)
	}
	return glamour.NewTermRenderer(
		glamour.WithStylePath(r.style),
		glamour.WithWordWrap(wrap),
	)
}

// Inline markup translations applied before glamour rendering.
var inlineMarkup = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`\\emph\{([^{}]*)\}`), "*$1*"},
	{regexp.MustCompile(`\\textit\{([^{}]*)\}`), "*$1*"},
	{regexp.MustCompile(`\\textbf\{([^{}]*)\}`), "**$1**"},
	{regexp.MustCompile(`\\texttt\{([^{}]*)\}`), "`$1`"},
	{regexp.MustCompile(`\$\$([^$]+)\$\$`), "\n```\n$1\n```\n"},
	{regexp.MustCompile(`\$([^$]+)\$`), "`$1`"},
}

var itemPattern = regexp.MustCompile(`(?m)^[ \t]*\\item[ \t]*`)

var listEnvPattern = regexp.MustCompile(`(?m)^[ \t]*\\(begin|end)\{(itemize|enumerate)\}[ \t]*$`)

// toMarkdown applies a minimal LaTeX-to-markdown mapping so glamour can
// typeset the common inline commands, display math, and list environments.
// Unrecognized commands pass through untouched.
func toMarkdown(body string) string {
	out := listEnvPattern.ReplaceAllString(body, "")
	out = itemPattern.ReplaceAllString(out, "- ")
	for _, m := range inlineMarkup {
		out = m.pattern.ReplaceAllString(out, m.repl)
	}
	return out
}
