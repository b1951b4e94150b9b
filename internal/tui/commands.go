package tui

import (
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/texedit/internal/core/typeset"
)

// debounceFireMsg is sent when an edit's quiet window elapses. The
// generation discriminates stale timers from the live one.
type debounceFireMsg struct {
	gen uint64
}

// typesetDoneMsg carries the result of an async typesetting pass. bodies is
// indexed by arena region index; failed bodies keep their raw text.
type typesetDoneMsg struct {
	gen    uint64
	bodies []string
	err    error
}

// fileOpenedMsg carries the result of reading a document from disk.
type fileOpenedMsg struct {
	path    string
	content string
	err     error
}

// exportDoneMsg carries the result of writing the flattened document.
type exportDoneMsg struct {
	path string
	err  error
}

// clipboardDoneMsg carries the result of a clipboard copy.
type clipboardDoneMsg struct {
	err error
}

// scheduleDebounceFire arms a timer for the given generation.
func scheduleDebounceFire(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return debounceFireMsg{gen: gen}
	})
}

// typesetRegions typesets every region body off the update loop. The model
// discards completions whose generation no longer matches.
func typesetRegions(renderer *typeset.Renderer, gen uint64, bodies []string, width int) tea.Cmd {
	return func() tea.Msg {
		out, err := renderer.Batch(bodies, width)
		if err != nil {
			log.Warn().Err(err).Uint64("gen", gen).Msg("tui: typesetting degraded")
		}
		return typesetDoneMsg{gen: gen, bodies: out, err: err}
	}
}

// openFile reads a document from disk. Size and extension checks happen in
// the session before any state is touched.
func openFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileOpenedMsg{path: path, err: err}
		}
		return fileOpenedMsg{path: path, content: string(data)}
	}
}

// exportToFile writes the flattened document to path.
func exportToFile(path, content string) tea.Cmd {
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(content), 0o644)
		return exportDoneMsg{path: path, err: err}
	}
}

// copyToClipboard places the flattened document on the system clipboard.
func copyToClipboard(content string) tea.Cmd {
	return func() tea.Msg {
		return clipboardDoneMsg{err: clipboard.WriteAll(content)}
	}
}
