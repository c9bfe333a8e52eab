// Package memory provides in-memory implementations of domain repositories.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
)

// Ensure interface compliance
var _ repositories.ProfileRepository = (*ProfileRepository)(nil)

// ProfileRepository is an in-memory implementation of ProfileRepository.
// Useful for testing and single-process deployments.
type ProfileRepository struct {
	profiles map[uuid.UUID]*entities.Profile
	mu       sync.RWMutex
}

// NewProfileRepository creates a new in-memory repository.
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[uuid.UUID]*entities.Profile),
	}
}

// Save persists a profile under the given ID, overwriting any previous version.
func (r *ProfileRepository) Save(_ context.Context, id uuid.UUID, profile *entities.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy so callers cannot mutate the stored profile afterwards.
	stored := *profile
	r.profiles[id] = &stored
	return nil
}

// FindByID retrieves a profile by its ID.
func (r *ProfileRepository) FindByID(_ context.Context, id uuid.UUID) (*entities.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}

	found := *profile
	return &found, nil
}

// Delete removes a profile. Deleting an absent profile is not an error.
func (r *ProfileRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.profiles, id)
	return nil
}
