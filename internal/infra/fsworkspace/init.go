// Package fsworkspace scaffolds Astra workspaces on the local filesystem.
package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/astra/internal/domain"
)

const configTemplate = `astra:
  defaults:
    diagnostic_id: 1
    image_width: 25
    image_height: 6
  paths:
    inputs_dir: inputs
    runs_dir: runs
`

// sampleManifest seeds inputs/ with the known fuel fixed points so a fresh
// workspace can run day 1 immediately.
const sampleManifest = "12\n14\n1969\n100756\n"

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, "inputs"),
		filepath.Join(root, "runs"),
		filepath.Join(root, ".astra", "logs"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	if err := ensureGitignore(root); err != nil {
		return err
	}

	files := map[string]string{
		filepath.Join(root, "astra.yaml"):             configTemplate,
		filepath.Join(root, "inputs", "input_01.txt"): sampleManifest,
	}

	for dst, content := range files {
		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				continue
			}
		}
		if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}

func ensureGitignore(root string) error {
	const header = "# Astra"
	entries := []string{
		"runs/",
		".astra/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
