package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
	"github.com/aalvaropc/astra/internal/usecase"
)

func orbitsCmd() *cobra.Command {
	var opts solveOpts

	c := &cobra.Command{
		Use:   "orbits",
		Short: "Verify the universal orbit map (checksum and transfer route)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := domain.PuzzleRef{Day: 6, Title: "Universal Orbit Map", InputFile: "input_06.txt"}

			return runSolve(cmd, opts, ref,
				func(ctx context.Context, src ports.InputSource, _ domain.Config, path string, w io.Writer) error {
					return usecase.NewOrbits(src).Execute(ctx, path, w)
				})
		},
	}

	opts.register(c)
	return c
}
