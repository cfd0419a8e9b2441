package ports

import "github.com/aalvaropc/astra/internal/domain"

// WorkspaceLocator finds an Astra workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}

// WorkspaceInitializer scaffolds a new workspace on disk.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
