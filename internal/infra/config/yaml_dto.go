package config

type YAMLJug struct {
	Name           string     `yaml:"name"`
	Description    string     `yaml:"description"`
	MeasuredVolume *float64   `yaml:"measured_volume"`
	Bands          []YAMLBand `yaml:"bands"`
}

type YAMLBand struct {
	Circumference *float64 `yaml:"circumference"`
	Height        *float64 `yaml:"height"`
}

type YAMLPuzzle struct {
	Name string  `yaml:"name"`
	Grid [][]int `yaml:"grid"`
}
