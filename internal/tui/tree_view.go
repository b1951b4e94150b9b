package tui

import (
	"strings"

	"github.com/colonyops/texedit/internal/core/document"
	"github.com/colonyops/texedit/internal/core/styles"
)

// TreeView renders the section tree with collapse indicators, dotted
// numbering, and cleaned titles. It tracks a cursor over the currently
// visible regions; collapsed subtrees are skipped during navigation.
type TreeView struct {
	tree    *document.Tree
	visible []int // region indices in display order, honoring collapse state
	cursor  int   // index into visible
	width   int
}

// NewTreeView creates a tree view over the given arena.
func NewTreeView(tree *document.Tree) *TreeView {
	tv := &TreeView{tree: tree, width: 80}
	tv.Refresh()
	return tv
}

// SetTree swaps the underlying arena, resetting cursor and visibility.
func (tv *TreeView) SetTree(tree *document.Tree) {
	tv.tree = tree
	tv.cursor = 0
	tv.Refresh()
}

// SetWidth updates the render width.
func (tv *TreeView) SetWidth(width int) {
	tv.width = width
}

// Refresh recomputes the visible rows from the arena's collapse state and
// clamps the cursor into range.
func (tv *TreeView) Refresh() {
	tv.visible = tv.visible[:0]
	for i := range tv.tree.Len() {
		if tv.tree.Visible(i) {
			tv.visible = append(tv.visible, i)
		}
	}
	if tv.cursor >= len(tv.visible) {
		tv.cursor = len(tv.visible) - 1
	}
	if tv.cursor < 0 {
		tv.cursor = 0
	}
}

// MoveCursor moves the cursor by delta visible rows, clamped at the ends.
func (tv *TreeView) MoveCursor(delta int) {
	if len(tv.visible) == 0 {
		return
	}
	tv.cursor = min(max(tv.cursor+delta, 0), len(tv.visible)-1)
}

// CursorRow returns the display row of the cursor.
func (tv *TreeView) CursorRow() int {
	return tv.cursor
}

// CurrentRegion returns the arena index of the region under the cursor,
// or -1 when the tree is empty.
func (tv *TreeView) CurrentRegion() int {
	if len(tv.visible) == 0 {
		return -1
	}
	return tv.visible[tv.cursor]
}

// headerLine formats a single region header: indicator, dotted number,
// cleaned title.
func (tv *TreeView) headerLine(i int, selected bool) string {
	r := tv.tree.Region(i)

	indicator := styles.IconExpanded
	if r.Collapsed {
		indicator = styles.IconCollapsed
	}

	indent := strings.Repeat("  ", max(r.Level-1, 0))

	title := r.Title
	titleStyle := styles.SectionTitleStyle
	if selected {
		titleStyle = styles.SectionSelectedStyle
	}

	var b strings.Builder
	if selected {
		b.WriteString(styles.SelectedBorderStyle.Render("┃") + " ")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(indent)
	b.WriteString(styles.SectionIndicatorStyle.Render(indicator))
	b.WriteString(" ")
	if r.Path != "" {
		b.WriteString(styles.SectionNumberStyle.Render(r.Path))
		b.WriteString(" ")
	}
	b.WriteString(titleStyle.Render(title))
	return b.String()
}

// bodyLines formats a region's text below its header, indented one level
// past the header. text is the raw content in edit mode or the typeset
// output in render mode.
func (tv *TreeView) bodyLines(i int, text string) []string {
	if text == "" {
		return nil
	}

	r := tv.tree.Region(i)
	indent := "  " + strings.Repeat("  ", max(r.Level-1, 0)) + "  "

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, indent+styles.SectionBodyStyle.Render(line))
	}
	return out
}

// Lines renders every visible region as header plus body. bodyFor maps a
// region index to the text shown under its header; a nil bodyFor shows the
// raw region content.
func (tv *TreeView) Lines(bodyFor func(i int) string) []string {
	var lines []string
	for row, i := range tv.visible {
		lines = append(lines, tv.headerLine(i, row == tv.cursor))

		r := tv.tree.Region(i)
		if r.Collapsed {
			continue
		}
		body := r.Content
		if bodyFor != nil {
			body = bodyFor(i)
		}
		lines = append(lines, tv.bodyLines(i, body)...)
	}
	return lines
}

// CursorLine returns the display line of the cursor's header row given the
// same body mapping used for rendering.
func (tv *TreeView) CursorLine(bodyFor func(i int) string) int {
	line := 0
	for row, i := range tv.visible {
		if row == tv.cursor {
			return line
		}
		line++

		r := tv.tree.Region(i)
		if r.Collapsed {
			continue
		}
		body := r.Content
		if bodyFor != nil {
			body = bodyFor(i)
		}
		line += len(tv.bodyLines(i, body))
	}
	return line
}

// View renders the tree as a single string.
func (tv *TreeView) View(bodyFor func(i int) string) string {
	if tv.tree.Empty() {
		return tv.placeholder()
	}
	return strings.Join(tv.Lines(bodyFor), "\n")
}

// placeholder is shown when the document has no recognizable sections.
func (tv *TreeView) placeholder() string {
	msg := "No sections found\n\n"
	msg += styles.PlaceholderAccentStyle.Render("ctrl+o") + " to open a file\n"
	msg += styles.PlaceholderAccentStyle.Render("q") + " to quit"

	return styles.PlaceholderStyle.Render(msg)
}
