package domain

// Jug is a named profile of measured bands, widest first, closed by a zero-height cap.
type Jug struct {
	Name        string
	Description string

	// MeasuredVolume is the capacity found by filling the vessel (optional, 0 if unknown).
	MeasuredVolume float64

	Bands []Cylinder
}

// JugRef is a lightweight reference to a jug file on disk.
type JugRef struct {
	Name string
	Path string
}

// Puzzle is a named Sudoku grid.
type Puzzle struct {
	Name string
	Grid Grid
}

// PuzzleRef is a lightweight reference to a puzzle file on disk.
type PuzzleRef struct {
	Name string
	Path string
}
