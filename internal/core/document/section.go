// Package document models a parsed document as a section forest and the
// live, editable region arena projected from it.
package document

// SectionNode is one titled section produced by the parser. It is pure data:
// the parser builds it and nothing mutates it afterwards. Live edits happen
// in the Region buffers, never here.
type SectionNode struct {
	Level    int    // nesting depth, 0 = top-level container
	Title    string // raw title, may contain markup
	Content  string // body text between this heading and the next
	Children []SectionNode
}
