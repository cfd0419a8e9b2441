package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
	"github.com/aalvaropc/astra/internal/usecase"
)

func fuelCmd() *cobra.Command {
	var opts solveOpts
	var sumOnly bool

	c := &cobra.Command{
		Use:   "fuel",
		Short: "Compute the launch fuel requirement for a module mass manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := domain.PuzzleRef{Day: 1, Title: "The Tyranny of the Rocket Equation", InputFile: manifestFileName}

			return runSolve(cmd, opts, ref,
				func(ctx context.Context, src ports.InputSource, _ domain.Config, path string, w io.Writer) error {
					uc := usecase.NewFuelReport(src)
					uc.SumOnly = sumOnly
					_, err := uc.Execute(ctx, path, w)
					return err
				})
		},
	}

	opts.register(c)
	c.Flags().BoolVar(&sumOnly, "sum-only", false, "Print only the total fuel sum")
	return c
}
