// Package repositories defines interfaces for domain persistence.
package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
)

// ProfileRepository is a keyed store for consumer profiles.
//
// The key is supplied by the caller: the core never owns a process-wide
// "current profile". Storing under an explicit ID is what lets multiple
// users coexist in one process.
type ProfileRepository interface {
	// Save persists the profile under the given ID, overwriting any
	// previous version.
	Save(ctx context.Context, id uuid.UUID, profile *entities.Profile) error

	// FindByID retrieves a profile. Returns ErrProfileNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Profile, error)

	// Delete removes a profile. Deleting an absent profile is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
