package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/texedit/pkg/iojson"
)

type OutlineCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewOutlineCmd creates a new outline command
func NewOutlineCmd(flags *Flags) *OutlineCmd {
	return &OutlineCmd{flags: flags}
}

// Register adds the outline command to the application
func (cmd *OutlineCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "outline",
		Usage:     "Print a document's section tree",
		UsageText: "texedit outline <file> [--json]",
		Description: `Prints the numbered section hierarchy without the section text.

Use --json for machine-readable output with levels and character counts.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// outlineEntry is the JSON shape for one section.
type outlineEntry struct {
	Number string `json:"number,omitempty"`
	Title  string `json:"title"`
	Level  int    `json:"level"`
	Chars  int    `json:"chars"`
}

func (cmd *OutlineCmd) run(_ context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("outline requires a document path")
	}

	session, err := loadSession(cmd.flags.Config, path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}

	tree := session.Tree()

	if cmd.jsonOutput {
		entries := make([]outlineEntry, 0, tree.Len())
		for i := range tree.Len() {
			r := tree.Region(i)
			entries = append(entries, outlineEntry{
				Number: r.Path,
				Title:  r.Title,
				Level:  r.Level,
				Chars:  len(r.Content),
			})
		}
		return iojson.Write(entries)
	}

	for _, line := range tree.Outline() {
		fmt.Println(line)
	}
	return nil
}
