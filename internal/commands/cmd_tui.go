package commands

import (
	"context"
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/texedit/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run opens the editor, optionally loading the document given as the first
// argument. Exported for use as the default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()

	session, err := loadSession(cmd.flags.Config, path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}

	var filename string
	if path != "" {
		filename = filepath.Base(path)
		log.Debug().Str("file", filename).Int("regions", session.Tree().Len()).
			Msg("commands: document loaded")
	}

	m := tui.New(cmd.flags.Config, session, filename)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
