package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/usecase"
)

// solveCmd runs one puzzle off the UI goroutine and reports back.
func solveCmd(deps Deps, cfg domain.Config, workspaceRoot string, p usecase.Puzzle) tea.Cmd {
	return func() tea.Msg {
		// Same resolution order as the CLI: the workspace inputs dir when the
		// file is there, otherwise the bare name in the current directory.
		path := p.Ref.InputFile
		if workspaceRoot != "" {
			candidate := filepath.Join(workspaceRoot, cfg.Paths.InputsDir, p.Ref.InputFile)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}

		var out strings.Builder
		err := p.Run(context.Background(), deps.Source, cfg, path, &out)
		if err != nil && deps.Logger != nil {
			deps.Logger.Warn("tui.solve_failed", "day", p.Ref.Day, "err", err)
		}

		return solveDoneMsg{
			day:    p.Ref.Day,
			title:  p.Ref.Title,
			report: out.String(),
			err:    err,
		}
	}
}
