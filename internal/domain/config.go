package domain

// ConfigFileName marks the root of a mathmod workspace.
const ConfigFileName = "mathmod.yaml"

// Config represents the workspace configuration loaded from mathmod.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Reports  ReportsConfig
}

type DefaultsConfig struct {
	Jug    string
	Puzzle string
	Slices int
}

type PathsConfig struct {
	JugsDir    string
	PuzzlesDir string
	ReportsDir string
}

type ReportsConfig struct {
	Enabled bool
	Index   bool
}

// DefaultConfig provides sane defaults if mathmod.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Jug:    "actual",
			Puzzle: "solved",
			Slices: 100,
		},
		Paths: PathsConfig{
			JugsDir:    "jugs",
			PuzzlesDir: "puzzles",
			ReportsDir: "reports",
		},
		Reports: ReportsConfig{
			Enabled: true,
			Index:   true,
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
