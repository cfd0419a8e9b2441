package tui

import (
	"log/slog"

	"github.com/aalvaropc/astra/internal/ports"
)

type Deps struct {
	Source  ports.InputSource
	Locator ports.WorkspaceLocator

	Logger *slog.Logger
}
