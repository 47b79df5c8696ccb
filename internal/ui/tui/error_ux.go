package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thatkingore/mathematical-modelling/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamljug") {
				return "Jugs directory not found"
			}
			if strings.Contains(oe.Op, "yamlpuzzle") {
				return "Puzzles directory not found"
			}
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid data in " + base

		case domain.KindInvalidArgument:
			return "Invalid input: " + innermost(err)

		case domain.KindDomain:
			return "Measurements out of range: " + innermost(err)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

// innermost drops the "op: kind: " prefixes of wrapped OpErrors.
func innermost(err error) string {
	for {
		var oe *domain.OpError
		if !errors.As(err, &oe) || oe.Err == nil {
			break
		}
		err = oe.Err
	}
	return err.Error()
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
