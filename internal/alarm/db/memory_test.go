package alarm_db

import (
	"context"
	"testing"
	"time"

	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, temps ...float64) (context.Context, *memoryRepository) {
	t.Helper()
	ctx := context.Background()
	repo := NewMemoryRepository().(*memoryRepository)
	for _, temp := range temps {
		_, err := repo.Insert(ctx, &domain.Alarm{Timestamp: time.Now(), Temperature: temp})
		require.NoError(t, err)
	}
	return ctx, repo
}

func TestMemory_InsertAssignsDistinctIDs(t *testing.T) {
	ctx, repo := seed(t, 10, 20)

	a, err := repo.Insert(ctx, &domain.Alarm{Temperature: 30})
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.ID)

	all, err := repo.Find(ctx, domain.AlarmFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	seen := map[int64]bool{}
	for _, x := range all {
		assert.False(t, seen[x.ID])
		seen[x.ID] = true
	}
	assert.Equal(t, 30.0, all[2].Temperature)
}

func TestMemory_FilterConjunction(t *testing.T) {
	ctx, repo := seed(t, 10, 20, 30)

	got, err := repo.Find(ctx, domain.AlarmFilter{MinTemp: ptr(15.0), MaxTemp: ptr(25.0)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 20.0, got[0].Temperature)
}

func TestMemory_ClearIgnoresUnknownIDs(t *testing.T) {
	ctx, repo := seed(t, 10)

	require.NoError(t, repo.Clear(ctx, []int64{1, 3}))

	got, err := repo.Find(ctx, domain.AlarmFilter{Cleared: ptr(true)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestMemory_DeleteIsIdempotent(t *testing.T) {
	ctx, repo := seed(t, 10, 20)

	require.NoError(t, repo.Delete(ctx, []int64{1}))
	require.NoError(t, repo.Delete(ctx, []int64{1}))

	got, err := repo.Find(ctx, domain.AlarmFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}
