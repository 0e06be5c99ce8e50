package sweep

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/kaboom/internal/repositories/sweep Repository

import (
	"context"

	"github.com/KirkDiggler/kaboom/internal/models"
)

// Repository defines the interface for sweep result persistence
type Repository interface {
	// SaveSweep persists a completed sweep
	SaveSweep(ctx context.Context, input *SaveSweepInput) error

	// GetSweep retrieves a sweep by ID
	GetSweep(ctx context.Context, input *GetSweepInput) (*models.Sweep, error)

	// GetLatestSweep retrieves the most recently saved sweep of a kind
	GetLatestSweep(ctx context.Context, input *GetLatestSweepInput) (*models.Sweep, error)

	// ListSweeps retrieves recent sweeps, newest first
	ListSweeps(ctx context.Context, input *ListSweepsInput) ([]*models.Sweep, error)

	// DeleteSweep removes a sweep
	DeleteSweep(ctx context.Context, input *DeleteSweepInput) error
}
