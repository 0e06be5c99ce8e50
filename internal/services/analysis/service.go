package analysis

import (
	"context"
	"errors"

	"github.com/KirkDiggler/kaboom/internal/common/clock"
	"github.com/KirkDiggler/kaboom/internal/common/uuid"
	"github.com/KirkDiggler/kaboom/internal/dice"
	"github.com/KirkDiggler/kaboom/internal/models"
	sweepRepo "github.com/KirkDiggler/kaboom/internal/repositories/sweep"
)

// service implements the Service interface
type service struct {
	maxDepth      int
	sweepRepo     sweepRepo.Repository
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new analysis service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SweepRepo == nil {
		return nil, ErrNilSweepRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxDepth := cfg.MaxDepth
	if maxDepth == 0 {
		maxDepth = dice.DefaultMaxDepth
	}

	return &service{
		maxDepth:      maxDepth,
		sweepRepo:     cfg.SweepRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// newDie constructs an engine die, mapping construction errors to the
// service's error type
func (s *service) newDie(size int) (*dice.Die, error) {
	d, err := dice.New(size)
	if err != nil {
		if errors.Is(err, dice.ErrInvalidFaceCount) {
			return nil, ErrInvalidDieSize
		}
		return nil, err
	}

	return d, nil
}

// QueryProbability answers P(total >= target) for a single exploding die
func (s *service) QueryProbability(ctx context.Context, input *QueryProbabilityInput) (*QueryProbabilityOutput, error) {
	d, err := s.newDie(input.DieSize)
	if err != nil {
		return nil, err
	}

	prob, truncated := d.ProbabilityAtLeastDepth(input.Target, s.maxDepth)

	return &QueryProbabilityOutput{
		DieSize:     input.DieSize,
		Target:      input.Target,
		Probability: prob,
		Truncated:   truncated,
	}, nil
}

// QueryMaxProbability answers P(max of two independent exploding dice >= target)
func (s *service) QueryMaxProbability(ctx context.Context, input *QueryMaxProbabilityInput) (*QueryMaxProbabilityOutput, error) {
	dieA, err := s.newDie(input.DieSizeA)
	if err != nil {
		return nil, err
	}

	dieB, err := s.newDie(input.DieSizeB)
	if err != nil {
		return nil, err
	}

	probA, truncA := dieA.ProbabilityAtLeastDepth(input.Target, s.maxDepth)
	probB, truncB := dieB.ProbabilityAtLeastDepth(input.Target, s.maxDepth)

	return &QueryMaxProbabilityOutput{
		DieSizeA:     input.DieSizeA,
		DieSizeB:     input.DieSizeB,
		Target:       input.Target,
		Probability:  1 - (1-probA)*(1-probB),
		ProbabilityA: probA,
		ProbabilityB: probB,
		Truncated:    truncA || truncB,
	}, nil
}

// QueryExpectedValue answers the closed-form expected total of an exploding die
func (s *service) QueryExpectedValue(ctx context.Context, input *QueryExpectedValueInput) (*QueryExpectedValueOutput, error) {
	d, err := s.newDie(input.DieSize)
	if err != nil {
		return nil, err
	}

	return &QueryExpectedValueOutput{
		DieSize:       input.DieSize,
		ExpectedValue: d.ExpectedValue(),
	}, nil
}

// validateGrid checks the die sizes and targets of a sweep request
func validateGrid(dieSizes, targets []int) error {
	if len(dieSizes) == 0 {
		return ErrNoDieSizes
	}

	if len(targets) == 0 {
		return ErrNoTargets
	}

	for _, size := range dieSizes {
		if size < 2 {
			return ErrInvalidDieSize
		}
	}

	return nil
}

// SweepSingle tabulates single-die probabilities over a grid of die sizes and targets
func (s *service) SweepSingle(ctx context.Context, input *SweepSingleInput) (*SweepSingleOutput, error) {
	if err := validateGrid(input.DieSizes, input.Targets); err != nil {
		return nil, err
	}

	cells := make(map[int]map[int]float64, len(input.DieSizes))
	truncated := false

	// One fresh die per size: each keeps its own memo across targets
	for _, size := range input.DieSizes {
		d, err := s.newDie(size)
		if err != nil {
			return nil, err
		}

		row := make(map[int]float64, len(input.Targets))
		for _, target := range input.Targets {
			prob, trunc := d.ProbabilityAtLeastDepth(target, s.maxDepth)
			row[target] = prob
			truncated = truncated || trunc
		}

		cells[size] = row
	}

	sweep := &models.Sweep{
		ID:        s.uuidGenerator.NewUUID(),
		Kind:      models.SweepKindSingle,
		DieSizes:  input.DieSizes,
		Targets:   input.Targets,
		Cells:     cells,
		Truncated: truncated,
		CreatedAt: s.clock.Now(),
	}

	if err := s.sweepRepo.SaveSweep(ctx, &sweepRepo.SaveSweepInput{
		Sweep: sweep,
	}); err != nil {
		return nil, err
	}

	return &SweepSingleOutput{
		Sweep: sweep,
	}, nil
}

// SweepMax tabulates max-of-two probabilities with a fixed first die over a grid
func (s *service) SweepMax(ctx context.Context, input *SweepMaxInput) (*SweepMaxOutput, error) {
	if err := validateGrid(input.DieSizes, input.Targets); err != nil {
		return nil, err
	}

	fixed, err := s.newDie(input.FixedDieSize)
	if err != nil {
		return nil, err
	}

	cells := make(map[int]map[int]float64, len(input.DieSizes))
	truncated := false

	for _, size := range input.DieSizes {
		second, err := s.newDie(size)
		if err != nil {
			return nil, err
		}

		row := make(map[int]float64, len(input.Targets))
		for _, target := range input.Targets {
			prob, trunc := dice.ProbabilityMaxAtLeastDepth(fixed, second, target, s.maxDepth)
			row[target] = prob
			truncated = truncated || trunc
		}

		cells[size] = row
	}

	sweep := &models.Sweep{
		ID:           s.uuidGenerator.NewUUID(),
		Kind:         models.SweepKindMax,
		FixedDieSize: input.FixedDieSize,
		DieSizes:     input.DieSizes,
		Targets:      input.Targets,
		Cells:        cells,
		Truncated:    truncated,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.sweepRepo.SaveSweep(ctx, &sweepRepo.SaveSweepInput{
		Sweep: sweep,
	}); err != nil {
		return nil, err
	}

	return &SweepMaxOutput{
		Sweep: sweep,
	}, nil
}

// GetSweep retrieves a stored sweep by ID
func (s *service) GetSweep(ctx context.Context, input *GetSweepInput) (*GetSweepOutput, error) {
	sweep, err := s.sweepRepo.GetSweep(ctx, &sweepRepo.GetSweepInput{
		SweepID: input.SweepID,
	})
	if err != nil {
		if errors.Is(err, sweepRepo.ErrSweepNotFound) {
			return nil, ErrSweepNotFound
		}
		return nil, err
	}

	return &GetSweepOutput{
		Sweep: sweep,
	}, nil
}

// GetLatestSweep retrieves the most recent stored sweep of a kind
func (s *service) GetLatestSweep(ctx context.Context, input *GetLatestSweepInput) (*GetLatestSweepOutput, error) {
	sweep, err := s.sweepRepo.GetLatestSweep(ctx, &sweepRepo.GetLatestSweepInput{
		Kind: input.Kind,
	})
	if err != nil {
		if errors.Is(err, sweepRepo.ErrSweepNotFound) {
			return nil, ErrSweepNotFound
		}
		return nil, err
	}

	return &GetLatestSweepOutput{
		Sweep: sweep,
	}, nil
}
