package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
	"github.com/aalvaropc/astra/internal/usecase"
)

func diagnosticCmd() *cobra.Command {
	var opts solveOpts
	var systemID int64

	c := &cobra.Command{
		Use:   "diagnostic",
		Short: "Run the ship computer self-test for a system ID",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := domain.PuzzleRef{Day: 5, Title: "Sunny with a Chance of Asteroids", InputFile: "input_05.txt"}

			return runSolve(cmd, opts, ref,
				func(ctx context.Context, src ports.InputSource, cfg domain.Config, path string, w io.Writer) error {
					id := systemID
					if !cmd.Flags().Changed("id") {
						id = cfg.Defaults.DiagnosticID
					}
					_, err := usecase.NewDiagnostic(src).Execute(ctx, path, id, w)
					return err
				})
		},
	}

	opts.register(c)
	c.Flags().Int64Var(&systemID, "id", 1, "System ID fed to the program")
	return c
}
