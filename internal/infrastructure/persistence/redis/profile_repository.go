// Package redis provides Redis-backed implementations of domain
// repositories for multi-process deployments. Entities are stored as
// JSON documents under namespaced keys.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
)

// Ensure interface compliance
var _ repositories.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository is a Redis-backed implementation of ProfileRepository.
type ProfileRepository struct {
	client *redis.Client
}

// NewProfileRepository creates a repository over an existing client.
func NewProfileRepository(client *redis.Client) *ProfileRepository {
	return &ProfileRepository{client: client}
}

func profileKey(id uuid.UUID) string {
	return "snacktrack:profile:" + id.String()
}

// Save persists a profile under the given ID, overwriting any previous version.
func (r *ProfileRepository) Save(ctx context.Context, id uuid.UUID, profile *entities.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := r.client.Set(ctx, profileKey(id), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store profile %s: %w", id, err)
	}
	return nil
}

// FindByID retrieves a profile by its ID.
func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error) {
	data, err := r.client.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile %s: %w", id, err)
	}

	var profile entities.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", id, err)
	}
	return &profile, nil
}

// Delete removes a profile. Deleting an absent profile is not an error.
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, profileKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	return nil
}
