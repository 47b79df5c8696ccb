package usecase

import (
	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/infra/logger"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
)

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

// Execute scaffolds a workspace under root. Existing files survive unless force is set.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return err
	}
	logger.For("usecase.init_workspace").Info("workspace.initialized", "root", root, "force", force)
	return nil
}
