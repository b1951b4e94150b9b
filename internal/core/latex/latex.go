// Package latex parses LaTeX-like source into a section forest. It is a
// pure text-to-tree function: it never touches the filesystem and holds no
// state between calls.
package latex

import (
	"regexp"
	"strings"

	"github.com/colonyops/texedit/internal/core/document"
)

// headingPattern matches sectioning commands, starred or not, with a
// single-argument title. Titles may contain one level of nested markup
// braces, e.g. \section{\emph{Intro}}.
var headingPattern = regexp.MustCompile(`\\(chapter|section|subsection|subsubsection|paragraph)\*?\{((?:[^{}]|\{[^{}]*\})*)\}`)

var titlePattern = regexp.MustCompile(`\\title\{([^{}]*)\}`)

// headingLevels maps sectioning commands to nesting depth. Chapters are
// level-0 containers: they group sections but carry no display number.
var headingLevels = map[string]int{
	"chapter":       0,
	"section":       1,
	"subsection":    2,
	"subsubsection": 3,
	"paragraph":     4,
}

// Parse converts raw source into an ordered section forest. Source with no
// sectioning commands yields an empty forest, never an error; the error
// return exists for the collaborator contract and future grammar checks.
func Parse(raw string) ([]document.SectionNode, error) {
	matches := headingPattern.FindAllStringSubmatchIndex(raw, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	type heading struct {
		level   int
		title   string
		content string
	}

	headings := make([]heading, 0, len(matches))
	for i, m := range matches {
		command := raw[m[2]:m[3]]
		title := raw[m[4]:m[5]]

		bodyStart := m[1]
		bodyEnd := len(raw)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		headings = append(headings, heading{
			level:   headingLevels[command],
			title:   title,
			content: strings.TrimSpace(stripEnvelope(raw[bodyStart:bodyEnd])),
		})
	}

	// Preamble text before the first heading becomes a level-0 container so
	// an abstract or \title block is not lost. Blank preambles are dropped.
	var forest []*sectionBuilder
	if pre := strings.TrimSpace(stripEnvelope(raw[:matches[0][0]])); pre != "" {
		forest = append(forest, &sectionBuilder{
			node: document.SectionNode{Level: 0, Title: preambleTitle(raw), Content: pre},
		})
	}

	// Stack-based nesting: each heading attaches to the nearest open heading
	// with a strictly smaller level.
	var stack []*sectionBuilder
	for _, h := range headings {
		b := &sectionBuilder{node: document.SectionNode{Level: h.level, Title: h.title, Content: h.content}}
		for len(stack) > 0 && stack[len(stack)-1].node.Level >= b.node.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			forest = append(forest, b)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, b)
		}
		stack = append(stack, b)
	}

	nodes := make([]document.SectionNode, 0, len(forest))
	for _, b := range forest {
		nodes = append(nodes, b.build())
	}
	return nodes, nil
}

// sectionBuilder accumulates children before freezing into a SectionNode.
type sectionBuilder struct {
	node     document.SectionNode
	children []*sectionBuilder
}

func (b *sectionBuilder) build() document.SectionNode {
	n := b.node
	for _, c := range b.children {
		n.Children = append(n.Children, c.build())
	}
	return n
}

// envelopeCommands are document-structure commands that carry no body text.
var envelopeCommands = []string{
	`\documentclass`,
	`\usepackage`,
	`\begin{document}`,
	`\end{document}`,
	`\maketitle`,
	`\tableofcontents`,
}

// stripEnvelope drops structural boilerplate lines so section bodies contain
// only authored text.
func stripEnvelope(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isEnvelopeLine(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isEnvelopeLine(line string) bool {
	for _, cmd := range envelopeCommands {
		if strings.HasPrefix(line, cmd) {
			return true
		}
	}
	return false
}

// preambleTitle extracts the \title argument for the preamble container,
// falling back to "Preamble".
func preambleTitle(raw string) string {
	if m := titlePattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return "Preamble"
}
