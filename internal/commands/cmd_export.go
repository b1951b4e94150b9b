package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/texedit/internal/core/editor"
)

type ExportCmd struct {
	flags *Flags

	// flags
	output    string
	toClip    bool
	useStdout bool
}

// NewExportCmd creates a new export command
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Flatten a document's section contents to plain text",
		UsageText: "texedit export <file> [--output path] [--clipboard] [--stdout]",
		Description: `Concatenates the text of every section in document order, separated by
blank lines. Headings and collapse state are not part of the output.

Without --output the result is written to texedit-YYYY-MM-DD.txt in the
current directory.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to this path instead of the dated default",
				Destination: &cmd.output,
			},
			&cli.BoolFlag{
				Name:        "clipboard",
				Usage:       "copy to the system clipboard instead of a file",
				Destination: &cmd.toClip,
			},
			&cli.BoolFlag{
				Name:        "stdout",
				Usage:       "print to stdout instead of a file",
				Destination: &cmd.useStdout,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(_ context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("export requires a document path")
	}

	session, err := loadSession(cmd.flags.Config, path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}

	content := session.Export()

	switch {
	case cmd.toClip:
		if err := clipboard.WriteAll(content); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Copied document to clipboard")

	case cmd.useStdout:
		fmt.Println(content)

	default:
		out := cmd.output
		if out == "" {
			out = editor.ExportFilename(time.Now())
		}
		if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		log.Debug().Str("path", out).Int("bytes", len(content)).Msg("commands: exported document")
		fmt.Fprintf(os.Stderr, "Exported to %s\n", out)
	}

	return nil
}
