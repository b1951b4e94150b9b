// Package editor orchestrates the document session: load, parse, edit,
// snapshot history, display mode, and export.
package editor

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/colonyops/texedit/internal/core/config"
	"github.com/colonyops/texedit/internal/core/debounce"
	"github.com/colonyops/texedit/internal/core/document"
	"github.com/colonyops/texedit/internal/core/history"
	"github.com/colonyops/texedit/internal/core/latex"
)

// ErrFileTooLarge is returned when input exceeds the configured maximum
// size. The previously loaded document is left untouched.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// ErrUnsupportedFile is returned for files outside the configured
// extension allow-list.
var ErrUnsupportedFile = errors.New("unsupported file type")

// Mode is the document display mode.
type Mode int

const (
	// ModeEdit shows raw editable text.
	ModeEdit Mode = iota
	// ModeRender shows read-only typeset output.
	ModeRender
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == ModeRender {
		return "RENDER"
	}
	return "EDIT"
}

// ParseFunc is the parser collaborator contract: pure text to section
// forest. Any failure is treated as an empty document.
type ParseFunc func(string) ([]document.SectionNode, error)

// Session owns all mutable document-wide state: the region tree, the
// history log, the display mode, and the edit debounce window. It is
// constructed once and reset wholesale when a new file is loaded.
type Session struct {
	cfg      *config.Config
	parse    ParseFunc
	tree     *document.Tree
	log      *history.Log
	mode     Mode
	debounce debounce.Timer
}

// NewSession creates a session with an empty document.
func NewSession(cfg *config.Config) *Session {
	return &Session{
		cfg:   cfg,
		parse: latex.Parse,
		tree:  document.Build(nil),
		log:   history.NewLog(),
	}
}

// SetParser swaps the parser collaborator. A nil parser degrades every
// load to an empty document.
func (s *Session) SetParser(fn ParseFunc) {
	s.parse = fn
}

// LoadDocument validates, parses, and installs raw as the current
// document, replacing the history log with a single initial snapshot.
// Oversized input fails before any state mutation; parser failures
// degrade to an empty document, never an error.
func (s *Session) LoadDocument(raw string) error {
	if maxSize := s.cfg.Editor.MaxFileSize; maxSize > 0 && len(raw) > maxSize {
		return fmt.Errorf("%w: %d > %d characters", ErrFileTooLarge, len(raw), maxSize)
	}

	nodes := s.parseOrEmpty(raw)

	s.tree = document.Build(nodes)
	s.log.Reset(s.tree.Snapshot())
	s.debounce.Cancel()
	s.mode = ModeEdit

	log.Debug().
		Int("sections", s.tree.Len()).
		Int("chars", len(raw)).
		Msg("editor: loaded document")
	return nil
}

// parseOrEmpty shields the session from a missing or failing parser.
func (s *Session) parseOrEmpty(raw string) (nodes []document.SectionNode) {
	if s.parse == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("editor: parser panicked, degrading to empty document")
			nodes = nil
		}
	}()

	nodes, err := s.parse(raw)
	if err != nil {
		log.Warn().Err(err).Msg("editor: parse failed, degrading to empty document")
		return nil
	}
	return nodes
}

// Tree returns the live region tree.
func (s *Session) Tree() *document.Tree {
	return s.tree
}

// Edit writes text into region i and restarts the debounce window,
// returning the generation the caller should schedule a firing for.
func (s *Session) Edit(i int, text string) uint64 {
	s.tree.SetContent(i, text)
	return s.debounce.Restart()
}

// DebounceFire handles a debounce timer firing for the given generation.
// Stale generations (a newer edit restarted the window) are ignored; the
// current generation pushes one coalesced snapshot.
func (s *Session) DebounceFire(gen uint64) bool {
	if !s.debounce.Fire(gen) {
		return false
	}
	return s.PushSnapshot()
}

// PushSnapshot records the current region contents in the history log.
// Identical consecutive snapshots are no-ops.
func (s *Session) PushSnapshot() bool {
	return s.log.Push(s.tree.Snapshot())
}

// Undo restores the previous snapshot into the region buffers. The
// earliest snapshot is a silent no-op. Any pending debounce window is
// cancelled so a stale firing cannot overwrite the restored state.
func (s *Session) Undo() bool {
	snap, ok := s.log.Undo()
	if !ok {
		return false
	}
	s.debounce.Cancel()
	s.tree.Restore(snap)
	return true
}

// Redo restores the next snapshot into the region buffers. The latest
// snapshot is a silent no-op.
func (s *Session) Redo() bool {
	snap, ok := s.log.Redo()
	if !ok {
		return false
	}
	s.debounce.Cancel()
	s.tree.Restore(snap)
	return true
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool {
	return s.log.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool {
	return s.log.CanRedo()
}

// HistoryLen returns the number of stored snapshots.
func (s *Session) HistoryLen() int {
	return s.log.Len()
}

// Mode returns the current display mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// ToggleMode flips between edit and render display. It never touches the
// history log or region contents.
func (s *Session) ToggleMode() Mode {
	if s.mode == ModeEdit {
		s.mode = ModeRender
	} else {
		s.mode = ModeEdit
	}
	return s.mode
}

// Export flattens the current region contents in document order, joined
// with blank-line separators.
func (s *Session) Export() string {
	return s.tree.Flatten()
}

// ExportFilename returns the dated default export file name.
func ExportFilename(now time.Time) string {
	return "texedit-" + now.Format("2006-01-02") + ".txt"
}

// CheckFile validates a file name and size against the configured limits
// before any read or parse. A rejection here means no state was mutated.
func (s *Session) CheckFile(name string, size int) error {
	if !s.cfg.RecognizedFile(name) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, name)
	}
	if maxSize := s.cfg.Editor.MaxFileSize; maxSize > 0 && size > maxSize {
		return fmt.Errorf("%w: %d > %d characters", ErrFileTooLarge, size, maxSize)
	}
	return nil
}
