package sweep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/kaboom/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sweepKeyPrefix  = "sweep:"
	latestKeyPrefix = "sweep:latest:" // Latest sweep ID per kind
	sweepTimeIndex  = "sweeps:by_time"
)

// ErrSweepNotFound is returned when a sweep is not found
var ErrSweepNotFound = errors.New("sweep not found")

// Config holds configuration for the Redis sweep repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed sweep repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSweep persists a sweep to Redis
func (r *redisRepository) SaveSweep(ctx context.Context, input *SaveSweepInput) error {
	if input == nil || input.Sweep == nil {
		return errors.New("input and sweep cannot be nil")
	}

	if input.Sweep.ID == "" {
		return errors.New("sweep ID cannot be empty")
	}

	// Marshal the sweep to JSON
	sweepJSON, err := json.Marshal(input.Sweep)
	if err != nil {
		return fmt.Errorf("failed to marshal sweep: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the sweep
	sweepKey := fmt.Sprintf("%s%s", sweepKeyPrefix, input.Sweep.ID)
	pipe.Set(ctx, sweepKey, sweepJSON, 0) // No expiration for now

	// Point the latest marker for this kind at the new sweep
	latestKey := fmt.Sprintf("%s%s", latestKeyPrefix, input.Sweep.Kind)
	pipe.Set(ctx, latestKey, input.Sweep.ID, 0)

	// Add the sweep to the time-ordered index
	pipe.ZAdd(ctx, sweepTimeIndex, redis.Z{
		Score:  float64(input.Sweep.CreatedAt.UnixNano()),
		Member: input.Sweep.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save sweep: %w", err)
	}

	return nil
}

// GetSweep retrieves a sweep by ID from Redis
func (r *redisRepository) GetSweep(ctx context.Context, input *GetSweepInput) (*models.Sweep, error) {
	if input == nil || input.SweepID == "" {
		return nil, errors.New("input and sweep ID cannot be empty")
	}

	// Get the sweep from Redis
	sweepKey := fmt.Sprintf("%s%s", sweepKeyPrefix, input.SweepID)
	sweepJSON, err := r.client.Get(ctx, sweepKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSweepNotFound
		}
		return nil, fmt.Errorf("failed to get sweep: %w", err)
	}

	// Unmarshal the sweep from JSON
	var sweep models.Sweep
	if err := json.Unmarshal([]byte(sweepJSON), &sweep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sweep: %w", err)
	}

	return &sweep, nil
}

// GetLatestSweep retrieves the most recently saved sweep of a kind from Redis
func (r *redisRepository) GetLatestSweep(ctx context.Context, input *GetLatestSweepInput) (*models.Sweep, error) {
	if input == nil || input.Kind == "" {
		return nil, errors.New("input and sweep kind cannot be empty")
	}

	// Get the sweep ID from the latest marker
	latestKey := fmt.Sprintf("%s%s", latestKeyPrefix, input.Kind)
	sweepID, err := r.client.Get(ctx, latestKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSweepNotFound
		}
		return nil, fmt.Errorf("failed to get latest sweep ID: %w", err)
	}

	// Get the sweep using the sweep ID
	return r.GetSweep(ctx, &GetSweepInput{
		SweepID: sweepID,
	})
}

// ListSweeps retrieves recent sweeps from Redis, newest first
func (r *redisRepository) ListSweeps(ctx context.Context, input *ListSweepsInput) ([]*models.Sweep, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	// Get sweep IDs from the time-ordered index, newest first
	sweepIDs, err := r.client.ZRevRange(ctx, sweepTimeIndex, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get sweep IDs: %w", err)
	}

	// If there are no sweeps, return an empty slice
	if len(sweepIDs) == 0 {
		return []*models.Sweep{}, nil
	}

	// Get all sweeps using a pipeline
	pipe := r.client.Pipeline()
	sweepCommands := make([]*redis.StringCmd, 0, len(sweepIDs))

	for _, sweepID := range sweepIDs {
		sweepKey := fmt.Sprintf("%s%s", sweepKeyPrefix, sweepID)
		sweepCommands = append(sweepCommands, pipe.Get(ctx, sweepKey))
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sweeps: %w", err)
	}

	// Process the results, preserving index order
	sweeps := make([]*models.Sweep, 0, len(sweepIDs))
	for i, cmd := range sweepCommands {
		sweepJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Sweep was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get sweep %s: %w", sweepIDs[i], err)
		}

		var sweep models.Sweep
		if err := json.Unmarshal([]byte(sweepJSON), &sweep); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sweep %s: %w", sweepIDs[i], err)
		}

		sweeps = append(sweeps, &sweep)
	}

	return sweeps, nil
}

// DeleteSweep removes a sweep from Redis
func (r *redisRepository) DeleteSweep(ctx context.Context, input *DeleteSweepInput) error {
	if input == nil || input.SweepID == "" {
		return errors.New("input and sweep ID cannot be empty")
	}

	// Get the sweep first to resolve its kind
	sweep, err := r.GetSweep(ctx, &GetSweepInput{
		SweepID: input.SweepID,
	})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Delete the sweep
	sweepKey := fmt.Sprintf("%s%s", sweepKeyPrefix, input.SweepID)
	pipe.Del(ctx, sweepKey)

	// Remove the sweep from the time-ordered index
	pipe.ZRem(ctx, sweepTimeIndex, input.SweepID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete sweep: %w", err)
	}

	// Clear the latest marker if it still points at this sweep
	latestKey := fmt.Sprintf("%s%s", latestKeyPrefix, sweep.Kind)
	latestID, err := r.client.Get(ctx, latestKey).Result()
	if err == nil && latestID == input.SweepID {
		if err := r.client.Del(ctx, latestKey).Err(); err != nil {
			return fmt.Errorf("failed to clear latest sweep marker: %w", err)
		}
	}

	return nil
}
