package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/texedit/internal/core/editor"
	"github.com/colonyops/texedit/internal/core/styles"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	var content string
	switch m.state {
	case stateEditing:
		content = m.renderEditing()
	default:
		content = m.viewport.View()
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(w),
		lipgloss.NewStyle().Height(max(h-2, 1)).Render(content),
		m.renderStatusBar(w),
	)

	if m.state == stateOpenPrompt {
		main = m.overlayOpenPrompt(main, w, h)
	}

	if m.toastController.HasToasts() {
		main = m.toastView.Overlay(main, w, h)
	}

	v := tea.NewView(main)
	v.AltScreen = true
	return v
}

// renderHeader draws the title row: file name on the left, app name on the
// right.
func (m Model) renderHeader(width int) string {
	name := m.filename
	if name == "" {
		name = "untitled"
	}
	left := styles.StatusInfoStyle.Render(name)
	right := styles.StatusInfoStyle.Render("texedit")

	fill := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + styles.StatusBarFillStyle.Render(strings.Repeat(" ", fill)) + right
}

// renderEditing draws the region editor: a context line naming the region
// being edited above the textarea.
func (m Model) renderEditing() string {
	r := m.session.Tree().Region(m.editIndex)

	label := r.Title
	if r.Path != "" {
		label = r.Path + " " + label
	}
	header := styles.SectionSelectedStyle.Render("Editing " + label)
	hint := styles.StatusDisabledStyle.Render("esc to finish")

	return lipgloss.JoinVertical(lipgloss.Left, header, hint, "", m.textarea.View())
}

// renderStatusBar draws mode, history availability, and key help.
func (m Model) renderStatusBar(width int) string {
	modeStyle := styles.StatusModeStyle
	if m.session.Mode() == editor.ModeRender {
		modeStyle = styles.StatusModeAltStyle
	}
	mode := modeStyle.Render(" " + m.session.Mode().String() + " ")

	undo := styles.StatusDisabledStyle.Render("↶")
	if m.session.CanUndo() {
		undo = styles.StatusHistoryStyle.Render("↶")
	}
	redo := styles.StatusDisabledStyle.Render("↷")
	if m.session.CanRedo() {
		redo = styles.StatusHistoryStyle.Render("↷")
	}
	history := styles.StatusBarFillStyle.Render(" ") + undo + styles.StatusBarFillStyle.Render(" ") + redo

	var help string
	switch m.state {
	case stateEditing:
		help = "esc:finish"
	case stateOpenPrompt:
		help = "enter:open • esc:cancel"
	default:
		help = "e:edit • enter:collapse • ctrl+t:mode • ctrl+z:undo • ctrl+s:export • ctrl+o:open • q:quit"
	}
	if m.typesetBusy {
		help = m.spinner.View() + " typesetting…"
	}
	helpPart := styles.StatusInfoStyle.Render(" " + help + " ")

	used := lipgloss.Width(mode) + lipgloss.Width(history) + lipgloss.Width(helpPart)
	fill := max(width-used, 0)

	return mode + history + styles.StatusBarFillStyle.Render(strings.Repeat(" ", fill)) + helpPart
}

// overlayOpenPrompt composites the file-open prompt over the main view.
func (m Model) overlayOpenPrompt(background string, width, height int) string {
	promptContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.SectionSelectedStyle.Render("Open document"),
		"",
		m.openInput.View(),
		"",
		styles.StatusDisabledStyle.Render("enter: open • esc: cancel"),
	)
	prompt := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.ColorPrimary).
		Padding(1, 2).
		Width(min(60, max(width-4, 20))).
		Render(promptContent)

	bgLayer := lipgloss.NewLayer(background)
	promptLayer := lipgloss.NewLayer(prompt)

	pw := lipgloss.Width(prompt)
	ph := lipgloss.Height(prompt)
	promptLayer.X(max((width-pw)/2, 0)).Y(max((height-ph)/2, 0)).Z(1)

	compositor := lipgloss.NewCanvas(bgLayer, promptLayer)
	return compositor.Render()
}
