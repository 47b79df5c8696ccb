package yamljug

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/infra/config"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
)

type Loader struct {
	jugsDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{jugsDir: "jugs"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithJugsDir(dir string) Option {
	return func(l *Loader) { l.jugsDir = dir }
}

var _ ports.JugLoader = (*Loader)(nil)

func (l *Loader) LoadJug(path string) (domain.Jug, error) {
	return config.LoadJug(path)
}

func (l *Loader) ListJugs(root string) ([]domain.JugRef, error) {
	dir := filepath.Join(root, l.jugsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamljug.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.JugRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := config.ReadName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.JugRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}
