package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/infra/inputfs"
	"github.com/aalvaropc/astra/internal/infra/logger"
	"github.com/aalvaropc/astra/internal/infra/workspacefinder"
	"github.com/aalvaropc/astra/internal/usecase"
)

// manifestFileName is the fixed day-1 input read by the bare invocation.
const manifestFileName = "input_01.txt"

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:   "astra",
		Short: "Astra — spacecraft puzzle workbench",
		Long: "Astra solves the spacecraft launch puzzles.\n\n" +
			"With no arguments it reads " + manifestFileName + " from the current\n" +
			"directory and prints the launch fuel report: one trace line per module\n" +
			"mass followed by the total fuel requirement.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Logging goes to the workspace; outside a workspace it stays off
			// so a bare run leaves no trace behind.
			wd, err := os.Getwd()
			if err != nil {
				return
			}
			root, err := workspacefinder.NewFinder().FindRoot(wd)
			if err != nil {
				return
			}
			cleanup, _ = logger.Setup(logger.Config{Root: root, Debug: debug})
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if cleanup != nil {
				_ = cleanup()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := usecase.NewFuelReport(inputfs.NewLoader()).
				Execute(cmd.Context(), manifestFileName, cmd.OutOrStdout())
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .astra/logs/astra.log")

	cmd.AddCommand(
		fuelCmd(),
		gravityCmd(),
		diagnosticCmd(),
		passwordCmd(),
		orbitsCmd(),
		imageCmd(),
		daysCmd(),
		initCmd(),
		tuiCmd(),
		versionCmd(),
	)
	return cmd
}
