package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snacktrack-dev/snacktrack/internal/domain/entities"
	"github.com/snacktrack-dev/snacktrack/internal/domain/repositories"
	"github.com/snacktrack-dev/snacktrack/internal/domain/values"
)

func storedReport(user string, start time.Time) *entities.VerdictReport {
	return &entities.VerdictReport{
		ID:        values.NewScanID(),
		User:      user,
		StartTime: start,
	}
}

func Test_ScanRepository_SaveAndFindByID(t *testing.T) {
	repo := NewScanRepository()
	ctx := context.Background()

	report := storedReport("Asha", time.Now())
	require.NoError(t, repo.Save(ctx, report))

	found, err := repo.FindByID(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", found.User)
}

func Test_ScanRepository_FindByID_NotFound(t *testing.T) {
	repo := NewScanRepository()

	_, err := repo.FindByID(context.Background(), values.NewScanID())
	assert.ErrorIs(t, err, repositories.ErrScanNotFound)
}

func Test_ScanRepository_FindByUser(t *testing.T) {
	repo := NewScanRepository()
	ctx := context.Background()
	now := time.Now()

	oldest := storedReport("Asha", now.Add(-2*time.Hour))
	middle := storedReport("Asha", now.Add(-time.Hour))
	newest := storedReport("Asha", now)
	other := storedReport("Ravi", now)

	for _, r := range []*entities.VerdictReport{oldest, middle, newest, other} {
		require.NoError(t, repo.Save(ctx, r))
	}

	t.Run("newest first", func(t *testing.T) {
		found, err := repo.FindByUser(ctx, "Asha", 0)
		require.NoError(t, err)

		require.Len(t, found, 3)
		assert.True(t, found[0].ID.Equals(newest.ID))
		assert.True(t, found[1].ID.Equals(middle.ID))
		assert.True(t, found[2].ID.Equals(oldest.ID))
	})

	t.Run("limit applies after sorting", func(t *testing.T) {
		found, err := repo.FindByUser(ctx, "Asha", 2)
		require.NoError(t, err)

		require.Len(t, found, 2)
		assert.True(t, found[0].ID.Equals(newest.ID))
	})

	t.Run("unknown user yields empty result", func(t *testing.T) {
		found, err := repo.FindByUser(ctx, "nobody", 0)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func Test_ScanRepository_FindBetween(t *testing.T) {
	repo := NewScanRepository()
	ctx := context.Background()
	now := time.Now()

	early := storedReport("Asha", now.Add(-3*time.Hour))
	inside := storedReport("Asha", now.Add(-time.Hour))
	late := storedReport("Asha", now)

	for _, r := range []*entities.VerdictReport{early, inside, late} {
		require.NoError(t, repo.Save(ctx, r))
	}

	found, err := repo.FindBetween(ctx, "Asha", now.Add(-2*time.Hour), now.Add(-30*time.Minute))
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.True(t, found[0].ID.Equals(inside.ID))
}
