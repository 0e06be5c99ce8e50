package analysis

import "context"

// Service defines the interface for exploding-dice analysis operations
type Service interface {
	// QueryProbability answers P(total >= target) for a single exploding die
	QueryProbability(ctx context.Context, input *QueryProbabilityInput) (*QueryProbabilityOutput, error)

	// QueryMaxProbability answers P(max of two independent exploding dice >= target)
	QueryMaxProbability(ctx context.Context, input *QueryMaxProbabilityInput) (*QueryMaxProbabilityOutput, error)

	// QueryExpectedValue answers the closed-form expected total of an exploding die
	QueryExpectedValue(ctx context.Context, input *QueryExpectedValueInput) (*QueryExpectedValueOutput, error)

	// SweepSingle tabulates single-die probabilities over a grid of die sizes and targets
	SweepSingle(ctx context.Context, input *SweepSingleInput) (*SweepSingleOutput, error)

	// SweepMax tabulates max-of-two probabilities with a fixed first die over a grid
	SweepMax(ctx context.Context, input *SweepMaxInput) (*SweepMaxOutput, error)

	// GetSweep retrieves a stored sweep by ID
	GetSweep(ctx context.Context, input *GetSweepInput) (*GetSweepOutput, error)

	// GetLatestSweep retrieves the most recent stored sweep of a kind
	GetLatestSweep(ctx context.Context, input *GetLatestSweepInput) (*GetLatestSweepOutput, error)
}
