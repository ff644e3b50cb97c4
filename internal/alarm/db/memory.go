package alarm_db

import (
	"context"
	"sync"

	"github.com/Raimguhinov/alarmlog/internal/alarm"
	"github.com/Raimguhinov/alarmlog/internal/domain"
)

// memoryRepository keeps alarms in insertion order.
type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	alarms []domain.Alarm
}

func NewMemoryRepository() alarm.Repository {
	return &memoryRepository{nextID: 1}
}

func (m *memoryRepository) Insert(_ context.Context, a *domain.Alarm) (*domain.Alarm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *a
	stored.ID = m.nextID
	m.nextID++
	m.alarms = append(m.alarms, stored)
	return &stored, nil
}

func (m *memoryRepository) Find(_ context.Context, filter domain.AlarmFilter) ([]domain.Alarm, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Alarm, 0, len(m.alarms))
	for _, a := range m.alarms {
		if filter.Match(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryRepository) Clear(_ context.Context, ids []int64) error {
	set := idSet(ids)

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.alarms {
		if _, ok := set[m.alarms[i].ID]; ok {
			m.alarms[i].Cleared = true
		}
	}
	return nil
}

func (m *memoryRepository) Delete(_ context.Context, ids []int64) error {
	set := idSet(ids)

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.alarms[:0]
	for _, a := range m.alarms {
		if _, ok := set[a.ID]; !ok {
			kept = append(kept, a)
		}
	}
	m.alarms = kept
	return nil
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
