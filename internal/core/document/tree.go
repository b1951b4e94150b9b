package document

import (
	"regexp"
	"strconv"
	"strings"
)

// Region is one editable section projected from a SectionNode. Regions are
// owned by the Tree; history snapshots only ever copy their Content strings.
type Region struct {
	Path      string // dotted position key, e.g. "2.1.3" ("" for level-0 containers)
	Title     string // cleaned title, markup wrappers stripped
	Level     int
	Collapsed bool
	Content   string // live buffer, diverges from the source node as the user types

	parent   int // index into Tree.regions, -1 for top-level
	children []int
}

// Tree is the region arena built from a parsed section forest. Region order
// is a fixed depth-first traversal of the forest and never changes after
// Build; it is the document order used by snapshots, restores, and export.
type Tree struct {
	regions []*Region
}

// markupPattern matches one-argument markup wrappers like \emph{Intro} or
// emph{Intro} (the leading backslash is optional in titles that already had
// it consumed by the parser).
var markupPattern = regexp.MustCompile(`\\?[a-zA-Z]+\{([^{}]*)\}`)

// CleanTitle strips every one-argument markup wrapper from a title, keeping
// only the argument text.
func CleanTitle(title string) string {
	cleaned := title
	for markupPattern.MatchString(cleaned) {
		cleaned = markupPattern.ReplaceAllString(cleaned, "$1")
	}
	return strings.TrimSpace(cleaned)
}

// Build flattens a section forest into a Tree. A nil or empty forest yields
// an empty Tree (zero regions).
func Build(nodes []SectionNode) *Tree {
	t := &Tree{}
	for i, node := range nodes {
		t.add(node, numberFor(node, "", i+1), -1)
	}
	return t
}

// numberFor computes the dotted number for a node at 1-based sibling index
// idx under parentNumber. Level-0 nodes are containers: they carry no number
// of their own, and their children restart numbering at the top level.
func numberFor(node SectionNode, parentNumber string, idx int) string {
	if node.Level == 0 {
		return ""
	}
	if parentNumber == "" {
		return strconv.Itoa(idx)
	}
	return parentNumber + "." + strconv.Itoa(idx)
}

func (t *Tree) add(node SectionNode, number string, parent int) int {
	r := &Region{
		Path:    number,
		Title:   CleanTitle(node.Title),
		Level:   node.Level,
		Content: node.Content,
		parent:  parent,
	}
	idx := len(t.regions)
	t.regions = append(t.regions, r)

	for i, child := range node.Children {
		childIdx := t.add(child, numberFor(child, number, i+1), idx)
		r.children = append(r.children, childIdx)
	}
	return idx
}

// Len returns the number of regions.
func (t *Tree) Len() int {
	return len(t.regions)
}

// Empty reports whether the tree has no regions.
func (t *Tree) Empty() bool {
	return len(t.regions) == 0
}

// Region returns the region at index i in document order.
func (t *Tree) Region(i int) *Region {
	return t.regions[i]
}

// Regions returns all regions in document order. The slice is owned by the
// tree; callers must not reorder it.
func (t *Tree) Regions() []*Region {
	return t.regions
}

// SetContent writes text into region i's live buffer. Out-of-range indices
// are ignored.
func (t *Tree) SetContent(i int, text string) {
	if i < 0 || i >= len(t.regions) {
		return
	}
	t.regions[i].Content = text
}

// Toggle flips the collapsed state of region i. This is purely a visibility
// change: content buffers and history are untouched.
func (t *Tree) Toggle(i int) {
	if i < 0 || i >= len(t.regions) {
		return
	}
	t.regions[i].Collapsed = !t.regions[i].Collapsed
}

// Visible reports whether region i should be displayed, i.e. no ancestor is
// collapsed. A collapsed region's own header stays visible; its body and
// descendants do not.
func (t *Tree) Visible(i int) bool {
	if i < 0 || i >= len(t.regions) {
		return false
	}
	for p := t.regions[i].parent; p >= 0; p = t.regions[p].parent {
		if t.regions[p].Collapsed {
			return false
		}
	}
	return true
}

// Snapshot copies every region's content in document order.
func (t *Tree) Snapshot() []string {
	snap := make([]string, len(t.regions))
	for i, r := range t.regions {
		snap[i] = r.Content
	}
	return snap
}

// Restore writes snap back into the region buffers in document order. A
// short snapshot restores the missing tail as empty text; extra entries are
// dropped. This tolerates region-count mismatches after a later file load.
func (t *Tree) Restore(snap []string) {
	for i, r := range t.regions {
		if i < len(snap) {
			r.Content = snap[i]
		} else {
			r.Content = ""
		}
	}
}

// Flatten joins every region's current content in document order with a
// blank-line separator. Body markup is left intact as authored; collapse
// state does not affect the result.
func (t *Tree) Flatten() string {
	parts := make([]string, 0, len(t.regions))
	for _, r := range t.regions {
		parts = append(parts, strings.TrimRight(r.Content, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// Outline returns one line per region: dotted number (when present), then
// the cleaned title. Used by the headless outline command.
func (t *Tree) Outline() []string {
	lines := make([]string, 0, len(t.regions))
	for _, r := range t.regions {
		indent := strings.Repeat("  ", max(r.Level-1, 0))
		switch {
		case r.Path != "":
			lines = append(lines, indent+r.Path+" "+r.Title)
		default:
			lines = append(lines, indent+r.Title)
		}
	}
	return lines
}
