package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
	"github.com/aalvaropc/astra/internal/usecase"
)

func imageCmd() *cobra.Command {
	var opts solveOpts
	var width, height int

	c := &cobra.Command{
		Use:   "image",
		Short: "Decode the BIOS password image (checksum and render)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref := domain.PuzzleRef{Day: 8, Title: "Space Image Format", InputFile: "input_08.txt"}

			return runSolve(cmd, opts, ref,
				func(ctx context.Context, src ports.InputSource, cfg domain.Config, path string, w io.Writer) error {
					wd, ht := width, height
					if !cmd.Flags().Changed("width") {
						wd = cfg.Defaults.ImageWidth
					}
					if !cmd.Flags().Changed("height") {
						ht = cfg.Defaults.ImageHeight
					}
					return usecase.NewImage(src).Execute(ctx, path, wd, ht, w)
				})
		},
	}

	opts.register(c)
	c.Flags().IntVar(&width, "width", 25, "Image width in pixels")
	c.Flags().IntVar(&height, "height", 6, "Image height in pixels")
	return c
}
