package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/infra/inputfs"
	"github.com/aalvaropc/astra/internal/infra/logger"
	"github.com/aalvaropc/astra/internal/infra/workspacefinder"
	"github.com/aalvaropc/astra/internal/ui/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and run the puzzles interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := tui.Deps{
				Source:  inputfs.NewLoader(),
				Locator: workspacefinder.NewFinder(),
				Logger:  logger.L(),
			}
			return tui.Run(deps)
		},
	}
}
