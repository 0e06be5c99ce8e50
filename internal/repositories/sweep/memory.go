package sweep

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/kaboom/internal/models"
)

// memoryRepository implements the Repository interface in process memory.
// It backs the analyzer CLI, which has no Redis to talk to.
type memoryRepository struct {
	mu     sync.RWMutex
	sweeps map[string]*models.Sweep
	latest map[models.SweepKind]string
}

// NewMemory creates a new in-memory sweep repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sweeps: make(map[string]*models.Sweep),
		latest: make(map[models.SweepKind]string),
	}
}

// SaveSweep stores a sweep in memory
func (r *memoryRepository) SaveSweep(ctx context.Context, input *SaveSweepInput) error {
	if input == nil || input.Sweep == nil {
		return errors.New("input and sweep cannot be nil")
	}

	if input.Sweep.ID == "" {
		return errors.New("sweep ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweeps[input.Sweep.ID] = input.Sweep
	r.latest[input.Sweep.Kind] = input.Sweep.ID

	return nil
}

// GetSweep retrieves a sweep by ID
func (r *memoryRepository) GetSweep(ctx context.Context, input *GetSweepInput) (*models.Sweep, error) {
	if input == nil || input.SweepID == "" {
		return nil, errors.New("input and sweep ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sweep, ok := r.sweeps[input.SweepID]
	if !ok {
		return nil, ErrSweepNotFound
	}

	return sweep, nil
}

// GetLatestSweep retrieves the most recently saved sweep of a kind
func (r *memoryRepository) GetLatestSweep(ctx context.Context, input *GetLatestSweepInput) (*models.Sweep, error) {
	if input == nil || input.Kind == "" {
		return nil, errors.New("input and sweep kind cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sweepID, ok := r.latest[input.Kind]
	if !ok {
		return nil, ErrSweepNotFound
	}

	sweep, ok := r.sweeps[sweepID]
	if !ok {
		return nil, ErrSweepNotFound
	}

	return sweep, nil
}

// ListSweeps retrieves recent sweeps, newest first
func (r *memoryRepository) ListSweeps(ctx context.Context, input *ListSweepsInput) ([]*models.Sweep, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sweeps := make([]*models.Sweep, 0, len(r.sweeps))
	for _, sweep := range r.sweeps {
		sweeps = append(sweeps, sweep)
	}

	sort.Slice(sweeps, func(i, j int) bool {
		return sweeps[i].CreatedAt.After(sweeps[j].CreatedAt)
	})

	if input.Limit > 0 && len(sweeps) > input.Limit {
		sweeps = sweeps[:input.Limit]
	}

	return sweeps, nil
}

// DeleteSweep removes a sweep
func (r *memoryRepository) DeleteSweep(ctx context.Context, input *DeleteSweepInput) error {
	if input == nil || input.SweepID == "" {
		return errors.New("input and sweep ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sweep, ok := r.sweeps[input.SweepID]
	if !ok {
		return ErrSweepNotFound
	}

	delete(r.sweeps, input.SweepID)

	if r.latest[sweep.Kind] == input.SweepID {
		delete(r.latest, sweep.Kind)
	}

	return nil
}
