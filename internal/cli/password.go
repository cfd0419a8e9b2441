package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
	"github.com/aalvaropc/astra/internal/usecase"
)

func passwordCmd() *cobra.Command {
	var opts solveOpts
	var min, max uint64

	c := &cobra.Command{
		Use:   "password",
		Short: "Count valid container passwords in a range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := domain.PuzzleRef{Day: 4, Title: "Secure Container", InputFile: "input_04.txt"}

			return runSolve(cmd, opts, ref,
				func(ctx context.Context, src ports.InputSource, _ domain.Config, path string, w io.Writer) error {
					uc := usecase.NewPassword(src)
					if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
						_, err := uc.Execute(ctx, min, max, w)
						return err
					}
					// No explicit range: read a single min-max line from the input.
					_, err := uc.ExecuteFromFile(ctx, path, w)
					return err
				})
		},
	}

	opts.register(c)
	c.Flags().Uint64Var(&min, "min", 0, "Lowest candidate password")
	c.Flags().Uint64Var(&max, "max", 0, "Highest candidate password")
	return c
}
