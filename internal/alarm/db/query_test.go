package alarm_db

import (
	"testing"
	"time"

	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/pkg/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectAll = "SELECT id, timestamp, temperature, smoke_detected, fire_detected, cleared FROM alarms"

func ptr[T any](v T) *T { return &v }

func TestFindQuery_NoFilters(t *testing.T) {
	q, args, err := findQuery(postgres.NewBuilder(), domain.AlarmFilter{})
	require.NoError(t, err)
	assert.Equal(t, selectAll+" ORDER BY id", q)
	assert.Empty(t, args)
}

func TestFindQuery_TemperatureRange(t *testing.T) {
	q, args, err := findQuery(postgres.NewBuilder(), domain.AlarmFilter{MinTemp: ptr(15.0), MaxTemp: ptr(25.0)})
	require.NoError(t, err)
	assert.Equal(t, selectAll+" WHERE (temperature >= $1 AND temperature <= $2) ORDER BY id", q)
	assert.Equal(t, []any{15.0, 25.0}, args)
}

func TestFindQuery_AllPredicates(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	q, args, err := findQuery(postgres.NewBuilder(), domain.AlarmFilter{
		StartTime:     &start,
		EndTime:       &end,
		MinTemp:       ptr(1.5),
		MaxTemp:       ptr(99.0),
		SmokeDetected: ptr(true),
		FireDetected:  ptr(false),
		Cleared:       ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, selectAll+" WHERE (timestamp >= $1 AND timestamp <= $2 AND temperature >= $3"+
		" AND temperature <= $4 AND fire_detected = $5 AND smoke_detected = $6 AND cleared = $7) ORDER BY id", q)
	assert.Equal(t, []any{start, end, 1.5, 99.0, false, true, true}, args)
}

func TestInsertQuery(t *testing.T) {
	ts := time.Date(2024, 3, 3, 3, 3, 3, 0, time.UTC)
	q, args, err := insertQuery(postgres.NewBuilder(), &domain.Alarm{Timestamp: ts, Temperature: 42, SmokeDetected: true})
	require.NoError(t, err)
	assert.Contains(t, q, "INSERT INTO alarms")
	assert.Contains(t, q, "timestamp,temperature,smoke_detected,fire_detected,cleared")
	assert.Contains(t, q, "RETURNING id")
	assert.Equal(t, []any{ts, 42.0, true, false, false}, args)
}

func TestClearQuery(t *testing.T) {
	q, args, err := clearQuery(postgres.NewBuilder(), []int64{1, 3})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE alarms SET cleared = $1 WHERE id IN ($2,$3)", q)
	assert.Equal(t, []any{true, int64(1), int64(3)}, args)
}

func TestDeleteQuery(t *testing.T) {
	q, args, err := deleteQuery(postgres.NewBuilder(), []int64{5})
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM alarms WHERE id IN ($1)", q)
	assert.Equal(t, []any{int64(5)}, args)
}
