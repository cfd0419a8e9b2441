package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/astra/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads astra.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, "astra.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Astra.Defaults.DiagnosticID != nil {
		cfg.Defaults.DiagnosticID = *y.Astra.Defaults.DiagnosticID
	}
	if y.Astra.Defaults.ImageWidth > 0 {
		cfg.Defaults.ImageWidth = y.Astra.Defaults.ImageWidth
	}
	if y.Astra.Defaults.ImageHeight > 0 {
		cfg.Defaults.ImageHeight = y.Astra.Defaults.ImageHeight
	}
	if y.Astra.Paths.InputsDir != "" {
		cfg.Paths.InputsDir = y.Astra.Paths.InputsDir
	}
	if y.Astra.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Astra.Paths.RunsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Astra struct {
		Defaults struct {
			DiagnosticID *int64 `yaml:"diagnostic_id"`
			ImageWidth   int    `yaml:"image_width"`
			ImageHeight  int    `yaml:"image_height"`
		} `yaml:"defaults"`

		Paths struct {
			InputsDir string `yaml:"inputs_dir"`
			RunsDir   string `yaml:"runs_dir"`
		} `yaml:"paths"`
	} `yaml:"astra"`
}
