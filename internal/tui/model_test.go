package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/texedit/internal/core/config"
	"github.com/colonyops/texedit/internal/core/editor"
	"github.com/colonyops/texedit/internal/core/notify"
	"github.com/colonyops/texedit/pkg/tuitest"
)

const modelSampleDoc = `\section{Alpha}
alpha body
\section{Beta}
beta body`

func newTestModel(t *testing.T) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	session := editor.NewSession(&cfg)
	require.NoError(t, session.LoadDocument(modelSampleDoc))

	m := New(&cfg, session, "sample.tex")
	updated, _ := m.Update(tuitest.WindowSize(80, 24))
	return updated.(Model)
}

func TestModel_CollapseKey(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.session.Tree().Region(0).Collapsed)

	updated, _ := m.Update(tuitest.KeyEnter())
	m = updated.(Model)
	assert.True(t, m.session.Tree().Region(0).Collapsed)

	updated, _ = m.Update(tuitest.KeyEnter())
	m = updated.(Model)
	assert.False(t, m.session.Tree().Region(0).Collapsed)
}

func TestModel_EditFlow(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tuitest.KeyPress('e'))
	m = updated.(Model)
	require.Equal(t, stateEditing, m.state)
	assert.Equal(t, "alpha body", m.textarea.Value())

	// A keystroke feeds the session and arms the debounce timer.
	updated, cmd := m.Update(tuitest.KeyPress('x'))
	m = updated.(Model)
	assert.NotNil(t, cmd)
	assert.Equal(t, m.textarea.Value(), m.session.Tree().Region(0).Content)

	// Leaving the editor records the snapshot immediately.
	updated, _ = m.Update(tuitest.KeyEscape())
	m = updated.(Model)
	assert.Equal(t, stateTree, m.state)
	assert.True(t, m.session.CanUndo())
}

func TestModel_EditBlockedInRenderMode(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tuitest.CtrlKey('t'))
	m = updated.(Model)
	require.Equal(t, editor.ModeRender, m.session.Mode())

	updated, _ = m.Update(tuitest.KeyPress('e'))
	m = updated.(Model)
	assert.Equal(t, stateTree, m.state)
	assert.True(t, m.toastController.HasToasts())
}

func TestModel_ModeToggleStartsTypeset(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tuitest.CtrlKey('t'))
	m = updated.(Model)
	assert.Equal(t, editor.ModeRender, m.session.Mode())
	assert.True(t, m.typesetBusy)
	assert.NotNil(t, cmd)

	// While typesetting is in flight the raw text is shown.
	assert.Equal(t, "alpha body", m.bodyFor(0))

	updated, _ = m.Update(typesetDoneMsg{gen: m.typesetGen, bodies: []string{"Alpha!", "Beta!"}})
	m = updated.(Model)
	assert.False(t, m.typesetBusy)
	assert.Equal(t, "Alpha!", m.bodyFor(0))
	assert.Equal(t, "Beta!", m.bodyFor(1))

	// Toggling back shows raw text again.
	updated, _ = m.Update(tuitest.CtrlKey('t'))
	m = updated.(Model)
	assert.Equal(t, "alpha body", m.bodyFor(0))
}

func TestModel_StaleTypesetDiscarded(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tuitest.CtrlKey('t'))
	m = updated.(Model)
	require.True(t, m.typesetBusy)

	updated, _ = m.Update(typesetDoneMsg{gen: m.typesetGen - 1, bodies: []string{"stale", "stale"}})
	m = updated.(Model)
	assert.True(t, m.typesetBusy, "stale completion must not clear the in-flight pass")
	assert.Empty(t, m.typesetOut)
}

func TestModel_TypesetFailureToasts(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tuitest.CtrlKey('t'))
	m = updated.(Model)

	updated, cmd := m.Update(typesetDoneMsg{
		gen:    m.typesetGen,
		bodies: []string{"alpha body", "beta body"},
		err:    errors.New("glamour exploded"),
	})
	m = updated.(Model)

	assert.NotNil(t, cmd)
	require.True(t, m.toastController.HasToasts())
	assert.Equal(t, notify.LevelWarning, m.toastController.Toasts()[0].notification.Level)
	// Failed bodies fall back to raw text.
	assert.Equal(t, "alpha body", m.bodyFor(0))
}

func TestModel_UndoRedoNoOpToasts(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tuitest.CtrlKey('z'))
	m = updated.(Model)
	require.True(t, m.toastController.HasToasts())
	assert.Equal(t, "Nothing to undo", m.toastController.Toasts()[0].notification.Message)

	m.toastController.DismissAll()
	updated, _ = m.Update(tuitest.CtrlKey('y'))
	m = updated.(Model)
	require.True(t, m.toastController.HasToasts())
	assert.Equal(t, "Nothing to redo", m.toastController.Toasts()[0].notification.Message)
}

func TestModel_OpenPrompt(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tuitest.CtrlKey('o'))
	m = updated.(Model)
	assert.Equal(t, stateOpenPrompt, m.state)

	updated, _ = m.Update(tuitest.KeyEscape())
	m = updated.(Model)
	assert.Equal(t, stateTree, m.state)
}

func TestModel_FileOpenError(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(fileOpenedMsg{path: "/missing/file.tex", err: errors.New("no such file")})
	m = updated.(Model)

	require.True(t, m.toastController.HasToasts())
	assert.Equal(t, notify.LevelError, m.toastController.Toasts()[0].notification.Level)
}

func TestModel_FileOpenUnsupportedExtension(t *testing.T) {
	m := newTestModel(t)
	before := m.session.Tree().Region(0).Content

	updated, _ := m.Update(fileOpenedMsg{path: "/tmp/image.png", content: "binary"})
	m = updated.(Model)

	require.True(t, m.toastController.HasToasts())
	assert.Equal(t, notify.LevelError, m.toastController.Toasts()[0].notification.Level)
	// The loaded document is untouched.
	assert.Equal(t, before, m.session.Tree().Region(0).Content)
}

func TestModel_FileOpenLoads(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(fileOpenedMsg{
		path:    "/tmp/fresh.tex",
		content: "\\section{Fresh}\nfresh body",
	})
	m = updated.(Model)

	assert.Equal(t, "fresh.tex", m.filename)
	require.Equal(t, 1, m.session.Tree().Len())
	assert.Equal(t, "fresh body", m.session.Tree().Region(0).Content)
	assert.False(t, m.session.CanUndo())
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tuitest.KeyPress('q'))
	m = updated.(Model)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}

func TestModel_DebounceFireRecordsSnapshot(t *testing.T) {
	m := newTestModel(t)

	gen := m.session.Edit(0, "changed via session")
	updated, _ := m.Update(debounceFireMsg{gen: gen})
	m = updated.(Model)

	assert.True(t, m.session.CanUndo())
	assert.Equal(t, 2, m.session.HistoryLen())
}
