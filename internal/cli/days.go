package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/usecase"
)

func daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List the implemented puzzle days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range usecase.Registry() {
				fmt.Fprintf(cmd.OutOrStdout(), "Day %02d  %-38s (%s)\n",
					p.Ref.Day, p.Ref.Title, p.Ref.InputFile)
			}
			return nil
		},
	}
}
