package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/infra/reportstore"
	"github.com/thatkingore/mathematical-modelling/internal/infra/workspacefinder"
	"github.com/thatkingore/mathematical-modelling/internal/infra/yamljug"
	"github.com/thatkingore/mathematical-modelling/internal/infra/yamlpuzzle"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	jugs    ports.JugLoader
	puzzles ports.PuzzleLoader

	store ports.ReportStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	jugLoader := yamljug.NewLoader(
		yamljug.WithJugsDir(cfg.Paths.JugsDir),
	)

	puzzleLoader := yamlpuzzle.NewLoader(
		root,
		yamlpuzzle.WithPuzzlesDir(cfg.Paths.PuzzlesDir),
	)

	var store ports.ReportStore
	if cfg.Reports.Enabled {
		store = reportstore.NewJSONStore(root, cfg)
	}

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		jugs:    jugLoader,
		puzzles: puzzleLoader,
		store:   store,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `mathmod init`): %w", wd, err)
	}
	return root, nil
}

// resolveJugPath turns a jug name, file name or path into a file path.
// An empty arg falls back to the workspace default jug.
func resolveJugPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Jug
	}
	if in == "" {
		return "", fmt.Errorf("jug is required (use --jug or -j)")
	}

	if looksLikePath(in) {
		return underRoot(ws.root, in), nil
	}

	jugsDir := filepath.Join(ws.root, ws.cfg.Paths.JugsDir)

	if hasYAMLExt(in) {
		p := filepath.Join(jugsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(jugsDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// As a last resort: match by the jug "name" field.
	refs, err := ws.jugs.ListJugs(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_jug",
		Kind: domain.KindNotFound,
		Path: jugsDir,
		Err:  fmt.Errorf("jug %q: %w", in, domain.ErrNotFound),
	}
}

// resolvePuzzleArg returns a path for path-like args and a bare name otherwise;
// the puzzle loader resolves names under the puzzles directory.
func resolvePuzzleArg(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if in == "" {
		return ws.cfg.Defaults.Puzzle
	}
	if looksLikePath(in) {
		return underRoot(ws.root, in)
	}
	if hasYAMLExt(in) {
		return filepath.Join(ws.root, ws.cfg.Paths.PuzzlesDir, in)
	}
	return in
}

func underRoot(root, p string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	return filepath.Clean(p)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
