package analysis

import (
	"github.com/KirkDiggler/kaboom/internal/common/clock"
	"github.com/KirkDiggler/kaboom/internal/common/uuid"
	"github.com/KirkDiggler/kaboom/internal/models"
	sweepRepo "github.com/KirkDiggler/kaboom/internal/repositories/sweep"
)

// Config holds configuration for the analysis service
type Config struct {
	// MaxDepth caps the explosion chain per query (defaults to the
	// engine's ceiling when zero)
	MaxDepth int

	// Repository dependencies
	SweepRepo sweepRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// QueryProbabilityInput contains parameters for a single-die probability query
type QueryProbabilityInput struct {
	// DieSize is the number of faces on the die
	DieSize int

	// Target is the minimum total to reach
	Target int
}

// QueryProbabilityOutput contains the result of a single-die probability query
type QueryProbabilityOutput struct {
	// DieSize is the number of faces on the die
	DieSize int

	// Target is the minimum total to reach
	Target int

	// Probability is P(total >= target)
	Probability float64

	// Truncated indicates the depth ceiling was hit and the probability
	// under-counts its true value
	Truncated bool
}

// QueryMaxProbabilityInput contains parameters for a max-of-two probability query
type QueryMaxProbabilityInput struct {
	// DieSizeA is the number of faces on the first die
	DieSizeA int

	// DieSizeB is the number of faces on the second die
	DieSizeB int

	// Target is the minimum total to reach
	Target int
}

// QueryMaxProbabilityOutput contains the result of a max-of-two probability query
type QueryMaxProbabilityOutput struct {
	// DieSizeA is the number of faces on the first die
	DieSizeA int

	// DieSizeB is the number of faces on the second die
	DieSizeB int

	// Target is the minimum total to reach
	Target int

	// Probability is P(max(A, B) >= target)
	Probability float64

	// ProbabilityA is P(A >= target) on its own
	ProbabilityA float64

	// ProbabilityB is P(B >= target) on its own
	ProbabilityB float64

	// Truncated indicates either die's query hit the depth ceiling
	Truncated bool
}

// QueryExpectedValueInput contains parameters for an expected-value query
type QueryExpectedValueInput struct {
	// DieSize is the number of faces on the die
	DieSize int
}

// QueryExpectedValueOutput contains the result of an expected-value query
type QueryExpectedValueOutput struct {
	// DieSize is the number of faces on the die
	DieSize int

	// ExpectedValue is the expected total of the exploding roll
	ExpectedValue float64
}

// SweepSingleInput contains parameters for a single-die sweep
type SweepSingleInput struct {
	// DieSizes are the die sizes to sweep
	DieSizes []int

	// Targets are the target values to sweep
	Targets []int
}

// SweepSingleOutput contains the result of a single-die sweep
type SweepSingleOutput struct {
	// Sweep is the tabulated, stored sweep
	Sweep *models.Sweep
}

// SweepMaxInput contains parameters for a max-of-two sweep
type SweepMaxInput struct {
	// FixedDieSize is the size of the fixed first die
	FixedDieSize int

	// DieSizes are the second-die sizes to sweep
	DieSizes []int

	// Targets are the target values to sweep
	Targets []int
}

// SweepMaxOutput contains the result of a max-of-two sweep
type SweepMaxOutput struct {
	// Sweep is the tabulated, stored sweep
	Sweep *models.Sweep
}

// GetSweepInput defines the input for retrieving a sweep by ID
type GetSweepInput struct {
	// SweepID is the unique identifier for the sweep
	SweepID string
}

// GetSweepOutput contains the result of retrieving a sweep by ID
type GetSweepOutput struct {
	// Sweep is the retrieved sweep
	Sweep *models.Sweep
}

// GetLatestSweepInput defines the input for retrieving the latest sweep of a kind
type GetLatestSweepInput struct {
	// Kind is the sweep kind to look up
	Kind models.SweepKind
}

// GetLatestSweepOutput contains the result of retrieving the latest sweep
type GetLatestSweepOutput struct {
	// Sweep is the retrieved sweep
	Sweep *models.Sweep
}
