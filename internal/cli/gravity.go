package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
	"github.com/aalvaropc/astra/internal/usecase"
)

func gravityCmd() *cobra.Command {
	var opts solveOpts
	var noun, verb, target int64

	c := &cobra.Command{
		Use:   "gravity",
		Short: "Run the gravity assist program (1202 patch or noun/verb search)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := domain.PuzzleRef{Day: 2, Title: "1202 Program Alarm", InputFile: "input_02.txt"}

			return runSolve(cmd, opts, ref,
				func(ctx context.Context, src ports.InputSource, _ domain.Config, path string, w io.Writer) error {
					uc := usecase.NewGravityAssist(src)
					if cmd.Flags().Changed("target") {
						_, err := uc.Search(ctx, path, target, w)
						return err
					}
					_, err := uc.Execute(ctx, path, noun, verb, w)
					return err
				})
		},
	}

	opts.register(c)
	c.Flags().Int64Var(&noun, "noun", 12, "Value patched into position 1")
	c.Flags().Int64Var(&verb, "verb", 2, "Value patched into position 2")
	c.Flags().Int64Var(&target, "target", 0, "Search for the noun/verb pair producing this output")
	return c
}
