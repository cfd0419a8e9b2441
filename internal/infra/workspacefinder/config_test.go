package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/astra/internal/domain"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := t.TempDir()

	// Partial config (only a diagnostic ID override).
	content := []byte("astra:\n  defaults:\n    diagnostic_id: 5\n")
	if err := os.WriteFile(filepath.Join(root, "astra.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Defaults.DiagnosticID != 5 {
		t.Fatalf("expected diagnostic_id=5, got=%d", cfg.Defaults.DiagnosticID)
	}
	if cfg.Defaults.ImageWidth != 25 || cfg.Defaults.ImageHeight != 6 {
		t.Fatalf("expected default image 25x6, got %dx%d", cfg.Defaults.ImageWidth, cfg.Defaults.ImageHeight)
	}
	if cfg.Paths.InputsDir != "inputs" {
		t.Fatalf("expected inputs dir=inputs, got=%s", cfg.Paths.InputsDir)
	}
	if cfg.Paths.RunsDir != "runs" {
		t.Fatalf("expected runs dir=runs, got=%s", cfg.Paths.RunsDir)
	}
}

func TestLoadConfig_OverridesPaths(t *testing.T) {
	root := t.TempDir()

	content := []byte("astra:\n  paths:\n    inputs_dir: data\n    runs_dir: artifacts\n")
	if err := os.WriteFile(filepath.Join(root, "astra.yaml"), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Paths.InputsDir != "data" || cfg.Paths.RunsDir != "artifacts" {
		t.Fatalf("unexpected paths: %+v", cfg.Paths)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "astra.yaml"), []byte(":\t:not yaml"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
