package tui

import (
	"path/filepath"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/texedit/internal/core/config"
	"github.com/colonyops/texedit/internal/core/editor"
	"github.com/colonyops/texedit/internal/core/notify"
	"github.com/colonyops/texedit/internal/core/typeset"
)

// UIState represents the current input focus of the TUI.
type UIState int

const (
	stateTree UIState = iota
	stateEditing
	stateOpenPrompt
)

// Model is the main Bubble Tea model for the editor.
type Model struct {
	cfg      *config.Config
	session  *editor.Session
	renderer *typeset.Renderer
	keys     KeyMap

	width  int
	height int
	state  UIState

	treeView *TreeView
	viewport viewport.Model

	editIndex int
	textarea  textarea.Model

	openInput textinput.Model

	// Typeset output per arena region, valid while mode is render. The
	// generation stamps async completions so stale ones are discarded.
	typesetGen  uint64
	typesetBusy bool
	typesetOut  []string
	spinner     spinner.Model

	toastController *ToastController
	toastView       *ToastView

	filename string
	quitting bool
}

// New creates the editor model around an initialized session.
func New(cfg *config.Config, session *editor.Session, filename string) Model {
	ta := textarea.New()
	ta.Placeholder = "Section text..."
	ta.CharLimit = 0

	ti := textinput.New()
	ti.Placeholder = "Path to document..."
	ti.CharLimit = 512

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	controller := NewToastController()

	return Model{
		cfg:             cfg,
		session:         session,
		renderer:        typeset.New(cfg.TUI.TypesetStyle),
		keys:            DefaultKeyMap(),
		treeView:        NewTreeView(session.Tree()),
		viewport:        viewport.New(),
		textarea:        ta,
		openInput:       ti,
		spinner:         sp,
		toastController: controller,
		toastView:       NewToastView(controller),
		filename:        filename,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case debounceFireMsg:
		return m.handleDebounceFire(msg)
	case typesetDoneMsg:
		return m.handleTypesetDone(msg)
	case fileOpenedMsg:
		return m.handleFileOpened(msg)
	case exportDoneMsg:
		return m.handleExportDone(msg)
	case clipboardDoneMsg:
		return m.handleClipboardDone(msg)
	case toastTickMsg:
		return m.handleToastTick()
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	// Reserve one row for the header and one for the status bar.
	contentHeight := max(m.height-2, 1)
	m.viewport = viewport.New(viewport.WithWidth(m.width), viewport.WithHeight(contentHeight))

	m.treeView.SetWidth(m.width)
	m.textarea.SetWidth(max(m.width-4, 20))
	m.textarea.SetHeight(max(contentHeight-4, 3))

	m.refreshContent()
	return m, nil
}

func (m Model) handleDebounceFire(msg debounceFireMsg) (tea.Model, tea.Cmd) {
	if m.session.DebounceFire(msg.gen) {
		log.Debug().Uint64("gen", msg.gen).Int("history_len", m.session.HistoryLen()).
			Msg("tui: recorded edit snapshot")
	}
	return m, nil
}

func (m Model) handleTypesetDone(msg typesetDoneMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.typesetGen {
		log.Debug().Uint64("gen", msg.gen).Uint64("current", m.typesetGen).
			Msg("tui: discarding stale typeset result")
		return m, nil
	}

	m.typesetBusy = false
	m.typesetOut = msg.bodies
	m.refreshContent()

	if msg.err != nil {
		return m, m.pushToast(notify.Warn("Typesetting degraded; showing raw text"))
	}
	return m, nil
}

func (m Model) handleFileOpened(msg fileOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Warn().Err(msg.err).Str("path", msg.path).Msg("tui: open failed")
		return m, m.pushToast(notify.Error("Cannot open " + filepath.Base(msg.path)))
	}

	if err := m.session.CheckFile(filepath.Base(msg.path), len(msg.content)); err != nil {
		return m, m.pushToast(notify.Error(err.Error()))
	}

	if err := m.session.LoadDocument(msg.content); err != nil {
		return m, m.pushToast(notify.Error(err.Error()))
	}

	m.filename = filepath.Base(msg.path)
	m.state = stateTree
	m.typesetOut = nil
	m.treeView.SetTree(m.session.Tree())
	m.refreshContent()

	if m.session.Tree().Empty() && msg.content != "" {
		return m, m.pushToast(notify.Warn("No sections recognized; starting empty"))
	}
	return m, m.pushToast(notify.Info("Opened " + m.filename))
}

func (m Model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Error().Err(msg.err).Str("path", msg.path).Msg("tui: export failed")
		return m, m.pushToast(notify.Error("Export failed: " + msg.err.Error()))
	}
	return m, m.pushToast(notify.Info("Exported to " + msg.path))
}

func (m Model) handleClipboardDone(msg clipboardDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.pushToast(notify.Error("Clipboard copy failed"))
	}
	return m, m.pushToast(notify.Info("Copied document to clipboard"))
}

func (m Model) handleToastTick() (tea.Model, tea.Cmd) {
	m.toastController.Tick(toastTickInterval)
	if m.toastController.HasToasts() {
		return m, scheduleToastTick()
	}
	m.toastController.SetTicking(false)
	return m, nil
}

func (m Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.typesetBusy {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleKey dispatches key presses by input focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateEditing:
		return m.handleEditingKey(msg)
	case stateOpenPrompt:
		return m.handleOpenPromptKey(msg)
	default:
		return m.handleTreeKey(msg)
	}
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		// Record the final state immediately rather than waiting out the
		// quiet window. A still-armed timer firing later is a no-op
		// because the snapshot digest is unchanged.
		m.session.PushSnapshot()
		m.textarea.Blur()
		m.state = stateTree
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)

	gen := m.session.Edit(m.editIndex, m.textarea.Value())
	return m, tea.Batch(cmd, scheduleDebounceFire(gen, m.cfg.DebounceInterval()))
}

func (m Model) handleOpenPromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.openInput.Blur()
		m.state = stateTree
		return m, nil
	case "enter":
		path := m.openInput.Value()
		m.openInput.Blur()
		m.state = stateTree
		if path == "" {
			return m, nil
		}
		return m, openFile(path)
	}

	var cmd tea.Cmd
	m.openInput, cmd = m.openInput.Update(msg)
	return m, cmd
}

func (m Model) handleTreeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.treeView.MoveCursor(-1)
		m.refreshContent()
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.treeView.MoveCursor(1)
		m.refreshContent()
		m.ensureCursorVisible()
		return m, nil

	case key.Matches(msg, m.keys.Collapse):
		i := m.treeView.CurrentRegion()
		if i < 0 {
			return m, nil
		}
		m.session.Tree().Toggle(i)
		m.treeView.Refresh()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.EditRegion):
		return m.beginEditing()

	case key.Matches(msg, m.keys.ToggleMode):
		return m.toggleMode()

	case key.Matches(msg, m.keys.Undo):
		if !m.session.Undo() {
			return m, m.pushToast(notify.Info("Nothing to undo"))
		}
		m.refreshContent()
		cmd := m.retypesetIfRendering()
		return m, cmd

	case key.Matches(msg, m.keys.Redo):
		if !m.session.Redo() {
			return m, m.pushToast(notify.Info("Nothing to redo"))
		}
		m.refreshContent()
		cmd := m.retypesetIfRendering()
		return m, cmd

	case key.Matches(msg, m.keys.Export):
		if m.session.Tree().Empty() {
			return m, m.pushToast(notify.Warn("Nothing to export"))
		}
		path := editor.ExportFilename(time.Now())
		return m, exportToFile(path, m.session.Export())

	case key.Matches(msg, m.keys.CopyAll):
		if m.session.Tree().Empty() {
			return m, m.pushToast(notify.Warn("Nothing to copy"))
		}
		return m, copyToClipboard(m.session.Export())

	case key.Matches(msg, m.keys.OpenFile):
		m.state = stateOpenPrompt
		m.openInput.SetValue("")
		return m, m.openInput.Focus()
	}

	// Remaining keys scroll the viewport (pgup/pgdn, ctrl+d/ctrl+u).
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) beginEditing() (tea.Model, tea.Cmd) {
	if m.session.Mode() == editor.ModeRender {
		return m, m.pushToast(notify.Info("Switch to edit mode to change text"))
	}

	i := m.treeView.CurrentRegion()
	if i < 0 {
		return m, nil
	}

	m.editIndex = i
	m.textarea.SetValue(m.session.Tree().Region(i).Content)
	m.state = stateEditing
	return m, m.textarea.Focus()
}

func (m Model) toggleMode() (tea.Model, tea.Cmd) {
	mode := m.session.ToggleMode()
	log.Debug().Str("mode", mode.String()).Msg("tui: display mode toggled")

	if mode != editor.ModeRender {
		// Invalidate any in-flight typeset pass and drop its output.
		m.typesetGen++
		m.typesetBusy = false
		m.typesetOut = nil
		m.refreshContent()
		return m, nil
	}
	cmd := m.startTypeset()
	return m, cmd
}

// startTypeset kicks off an async typesetting pass over every region body.
func (m *Model) startTypeset() tea.Cmd {
	m.typesetGen++
	m.typesetBusy = true

	tree := m.session.Tree()
	bodies := make([]string, tree.Len())
	for i := range tree.Len() {
		bodies[i] = tree.Region(i).Content
	}

	return tea.Batch(
		m.spinner.Tick,
		typesetRegions(m.renderer, m.typesetGen, bodies, m.typesetWidth()),
	)
}

func (m *Model) retypesetIfRendering() tea.Cmd {
	if m.session.Mode() != editor.ModeRender {
		return nil
	}
	return m.startTypeset()
}

// typesetWidth leaves room for the tree indent gutter.
func (m Model) typesetWidth() int {
	return max(m.width-8, 20)
}

// bodyFor maps a region index to the text shown under its header.
func (m Model) bodyFor(i int) string {
	raw := m.session.Tree().Region(i).Content
	if m.session.Mode() != editor.ModeRender || m.typesetBusy {
		return raw
	}
	if i < len(m.typesetOut) {
		return m.typesetOut[i]
	}
	return raw
}

// refreshContent re-renders the tree into the viewport.
func (m *Model) refreshContent() {
	m.viewport.SetContent(m.treeView.View(m.bodyFor))
}

// ensureCursorVisible scrolls the viewport so the cursor's header row stays
// on screen.
func (m *Model) ensureCursorVisible() {
	line := m.treeView.CursorLine(m.bodyFor)

	offset := m.viewport.YOffset()
	visible := m.viewport.VisibleLineCount()

	if line < offset {
		m.viewport.SetYOffset(line)
	}
	if line >= offset+visible {
		m.viewport.SetYOffset(line - visible + 1)
	}
}

// pushToast queues a toast and starts the eviction ticker if idle.
func (m Model) pushToast(n notify.Notification) tea.Cmd {
	m.toastController.Push(n)
	if m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}
