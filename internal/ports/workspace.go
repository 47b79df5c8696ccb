package ports

import "github.com/thatkingore/mathematical-modelling/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
