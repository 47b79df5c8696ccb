package yamlpuzzle

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
	rootDir    string
	puzzlesDir string
}

type Option func(*Loader)

func WithPuzzlesDir(dir string) Option {
	return func(l *Loader) { l.puzzlesDir = dir }
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:    root,
		puzzlesDir: "puzzles",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.PuzzleLoader = (*Loader)(nil)

// LoadPuzzle accepts either a puzzle name (e.g., "solved") or a full path to a YAML file.
func (l *Loader) LoadPuzzle(nameOrPath string) (domain.Puzzle, error) {
	path := nameOrPath
	if !isPathLike(nameOrPath) {
		path = filepath.Join(l.rootDir, l.puzzlesDir, nameOrPath+".yaml")
	}
	return config.LoadPuzzle(filepath.Clean(path))
}

func (l *Loader) ListPuzzles(root string) ([]domain.PuzzleRef, error) {
	dir := filepath.Join(root, l.puzzlesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlpuzzle.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.PuzzleRef
	for _, e := range entries {
		if e.IsDir() || !isPathLike(e.Name()) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		n, _ := config.ReadName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		refs = append(refs, domain.PuzzleRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func isPathLike(s string) bool {
	return strings.HasSuffix(s, ".yaml") || strings.HasSuffix(s, ".yml") || strings.Contains(s, string(filepath.Separator))
}
