package config

import (
	"os"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadJug(path string) (domain.Jug, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Jug{}, &domain.OpError{
			Op:   "config.load_jug",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLJug
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Jug{}, &domain.OpError{
			Op:   "config.load_jug",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapJug(path, dto)
}

func LoadPuzzle(path string) (domain.Puzzle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Puzzle{}, &domain.OpError{
			Op:   "config.load_puzzle",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLPuzzle
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Puzzle{}, &domain.OpError{
			Op:   "config.load_puzzle",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapPuzzle(path, dto)
}

// ReadName reads only the name field of a jug or puzzle file.
func ReadName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
