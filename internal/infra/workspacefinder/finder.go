package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/astra/internal/domain"
)

// Finder locates an Astra workspace root by searching for astra.yaml upward.
type Finder struct {
	ConfigFile string // defaults to "astra.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: "astra.yaml"}
}

// FindRoot walks from startDir toward the filesystem root and returns the
// first directory containing the workspace marker. A file path is accepted
// and resolved from its directory. Errors carry the start path so callers
// can report where the search began.
func (f *Finder) FindRoot(startDir string) (string, error) {
	const op = "workspacefinder.findroot"

	if strings.TrimSpace(startDir) == "" {
		return "", &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("empty start directory"),
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for dir = filepath.Clean(dir); ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, f.ConfigFile)); err == nil {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			return "", &domain.OpError{
				Op:   op,
				Kind: domain.KindNotFound,
				Path: startDir,
				Err:  domain.ErrNotFound,
			}
		}
	}
}
