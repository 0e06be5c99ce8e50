package models

import (
	"time"
)

// SweepKind identifies what a sweep measured
type SweepKind string

const (
	// SweepKindSingle indicates a sweep of single-die probabilities
	SweepKindSingle SweepKind = "single"

	// SweepKindMax indicates a sweep of max-of-two-dice probabilities
	// with a fixed first die
	SweepKindMax SweepKind = "max"
)

// Sweep represents one completed analysis run: probabilities tabulated
// over a grid of die sizes and targets
type Sweep struct {
	// ID is the unique identifier for the sweep
	ID string

	// Kind is what the sweep measured
	Kind SweepKind

	// FixedDieSize is the size of the fixed first die for max sweeps
	// (zero for single-die sweeps)
	FixedDieSize int

	// DieSizes are the swept die sizes, in sweep order
	DieSizes []int

	// Targets are the swept target values, in sweep order
	Targets []int

	// Cells maps die size to target to probability
	Cells map[int]map[int]float64

	// Truncated indicates at least one cell hit the recursion-depth
	// ceiling and under-counts its true probability
	Truncated bool

	// CreatedAt is when the sweep was computed
	CreatedAt time.Time
}

// Cell returns the probability for a (dieSize, target) pair and whether
// the sweep contains it
func (s *Sweep) Cell(dieSize, target int) (float64, bool) {
	row, ok := s.Cells[dieSize]
	if !ok {
		return 0, false
	}

	prob, ok := row[target]
	return prob, ok
}
