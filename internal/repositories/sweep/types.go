package sweep

import "github.com/KirkDiggler/kaboom/internal/models"

type SaveSweepInput struct {
	Sweep *models.Sweep
}

type GetSweepInput struct {
	SweepID string
}

type GetLatestSweepInput struct {
	Kind models.SweepKind
}

type ListSweepsInput struct {
	// Limit caps how many sweeps are returned (0 means no cap)
	Limit int
}

type DeleteSweepInput struct {
	SweepID string
}
