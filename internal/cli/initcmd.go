package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/infra/fsworkspace"
	"github.com/aalvaropc/astra/internal/usecase"
)

func initCmd() *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold an Astra workspace (astra.yaml, inputs/, runs/)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := dir
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(domain.WorkspaceSpec{Root: root}, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace initialized at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "d", "", "Target directory (defaults to the current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing scaffold files")
	return c
}
