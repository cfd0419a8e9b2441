package usecase

import (
	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(init ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: init}
}

func (uc *InitWorkspace) Execute(spec domain.WorkspaceSpec, force bool) error {
	return uc.initializer.Init(spec, force)
}
