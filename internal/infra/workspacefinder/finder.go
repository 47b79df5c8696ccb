package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"github.com/thatkingore/mathematical-modelling/internal/ports"
)

// EnvWorkspace pins the workspace root and skips the upward search.
const EnvWorkspace = "MATHMOD_WORKSPACE"

// Finder locates the mathmod workspace that holds the jugs and puzzles.
type Finder struct {
	ConfigFile string // defaults to "mathmod.yaml"

	// Getenv reads EnvWorkspace; nil disables the override.
	Getenv func(string) string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: domain.ConfigFileName, Getenv: os.Getenv}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot returns the directory of the nearest mathmod.yaml at or above startDir.
// A startDir naming a file (a jug or puzzle, say) starts from its directory.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if pinned, ok, err := f.pinned(); ok || err != nil {
		return pinned, err
	}

	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	start := filepath.Clean(abs)
	for cur := start; ; {
		if f.hasConfig(cur) {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: start,
				Err:  fmt.Errorf("no %s here or in any parent: %w", f.configFile(), domain.ErrNotFound),
			}
		}
		cur = parent
	}
}

// pinned resolves EnvWorkspace. ok is false when the variable is unset.
func (f *Finder) pinned() (root string, ok bool, err error) {
	if f.Getenv == nil {
		return "", false, nil
	}
	v := strings.TrimSpace(f.Getenv(EnvWorkspace))
	if v == "" {
		return "", false, nil
	}

	abs, err := filepath.Abs(v)
	if err != nil {
		return "", true, &domain.OpError{Op: "workspacefinder.env", Kind: domain.KindExecution, Path: v, Err: err}
	}
	if !f.hasConfig(abs) {
		return "", true, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Path: abs,
			Err:  fmt.Errorf("%s points at a directory without %s: %w", EnvWorkspace, f.configFile(), domain.ErrInvalidConfig),
		}
	}
	return filepath.Clean(abs), true, nil
}

// hasConfig ignores a directory that happens to be named like the config file.
func (f *Finder) hasConfig(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, f.configFile()))
	return err == nil && info.Mode().IsRegular()
}

func (f *Finder) configFile() string {
	if f.ConfigFile == "" {
		return domain.ConfigFileName
	}
	return f.ConfigFile
}
