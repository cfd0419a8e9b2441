package domain

import "time"

// PuzzleRef identifies one puzzle day and its default input file.
type PuzzleRef struct {
	Day       int
	Title     string
	InputFile string // e.g. "input_01.txt"; empty if the puzzle takes no file
}

// RunRecord is the artifact persisted after a solve.
type RunRecord struct {
	Day       int       `json:"day"`
	Title     string    `json:"title"`
	InputPath string    `json:"input_path,omitempty"`
	Report    []string  `json:"report"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Config represents the minimal Astra configuration loaded from astra.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	// DiagnosticID is the system ID fed to the ship computer diagnostic.
	DiagnosticID int64

	// ImageWidth/ImageHeight describe the BIOS image layer format.
	ImageWidth  int
	ImageHeight int
}

type PathsConfig struct {
	InputsDir string
	RunsDir   string
}

// DefaultConfig provides sane defaults if astra.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			DiagnosticID: 1,
			ImageWidth:   25,
			ImageHeight:  6,
		},
		Paths: PathsConfig{
			InputsDir: "inputs",
			RunsDir:   "runs",
		},
	}
}

// WorkspaceSpec describes a workspace to be scaffolded on disk.
type WorkspaceSpec struct {
	Root string
}
