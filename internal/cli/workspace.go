package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/infra/inputfs"
	"github.com/aalvaropc/astra/internal/infra/logger"
	"github.com/aalvaropc/astra/internal/infra/runstore"
	"github.com/aalvaropc/astra/internal/infra/workspacefinder"
	"github.com/aalvaropc/astra/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	source ports.InputSource
	store  ports.RunStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		source: inputfs.NewLoader(),
		store:  runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

// maybeWorkspace is loadWorkspace for commands that also work standalone:
// when no workspace is found (and none was asked for) it returns nil.
func maybeWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	ws, err := loadWorkspace(workspaceFlag)
	if err != nil {
		if workspaceFlag == "" && domain.IsKind(err, domain.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ws, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `astra init`): %w", wd, err)
	}
	return root, nil
}

// resolveInputPath picks the input file for a puzzle: an explicit flag wins,
// then the workspace inputs dir, then the file name in the current directory.
func resolveInputPath(ws *workspaceCtx, inputFile, inputFlag string) string {
	if in := strings.TrimSpace(inputFlag); in != "" {
		return in
	}
	if ws != nil {
		p := filepath.Join(ws.root, ws.cfg.Paths.InputsDir, inputFile)
		if fileExists(p) {
			return p
		}
	}
	return inputFile
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// solveOpts are the flags shared by all puzzle subcommands.
type solveOpts struct {
	workspace string
	input     string
	noSave    bool
}

func (o *solveOpts) register(c *cobra.Command) {
	c.Flags().StringVarP(&o.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&o.input, "input", "i", "", "Input file (optional; defaults to the workspace input)")
	c.Flags().BoolVar(&o.noSave, "no-save", false, "Do not save a run artifact under runs/")
}

// runSolve executes a puzzle, tees its report to stdout, and records the run
// in the workspace store when one is available.
func runSolve(cmd *cobra.Command, opts solveOpts, ref domain.PuzzleRef,
	fn func(ctx context.Context, src ports.InputSource, cfg domain.Config, path string, w io.Writer) error,
) error {
	ws, err := maybeWorkspace(opts.workspace)
	if err != nil {
		return err
	}

	cfg := domain.DefaultConfig()
	src := ports.InputSource(inputfs.NewLoader())
	if ws != nil {
		cfg = ws.cfg
		src = ws.source
	}

	path := resolveInputPath(ws, ref.InputFile, opts.input)

	var buf bytes.Buffer
	w := io.MultiWriter(cmd.OutOrStdout(), &buf)

	started := time.Now()
	if err := fn(cmd.Context(), src, cfg, path, w); err != nil {
		return err
	}
	ended := time.Now()

	if ws == nil || opts.noSave {
		return nil
	}

	rec := domain.RunRecord{
		Day:       ref.Day,
		Title:     ref.Title,
		InputPath: path,
		Report:    reportLines(buf.String()),
		StartedAt: started,
		EndedAt:   ended,
	}
	id, err := ws.store.SaveRun(rec)
	if err != nil {
		// A failed artifact write must not fail the solve itself.
		logger.L().Warn("runstore.save_failed", "day", ref.Day, "err", err)
		return nil
	}
	logger.L().Info("runstore.saved", "day", ref.Day, "id", id)
	return nil
}

func reportLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
