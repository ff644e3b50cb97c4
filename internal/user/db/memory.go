package user_db

import (
	"context"
	"sort"
	"sync"

	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/internal/user"
)

type memoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.User
	byName map[string]int64
}

func NewMemoryRepository() user.Repository {
	return &memoryRepository{
		nextID: 1,
		byID:   map[int64]domain.User{},
		byName: map[string]int64{},
	}
}

func (m *memoryRepository) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byName[u.Name]; ok {
		return nil, domain.ErrUserExists
	}

	stored := *u
	stored.ID = m.nextID
	m.nextID++
	m.byID[stored.ID] = stored
	m.byName[stored.Name] = stored.ID
	return &stored, nil
}

func (m *memoryRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.byID[id]; ok {
		delete(m.byName, u.Name)
		delete(m.byID, id)
	}
	return nil
}

func (m *memoryRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (m *memoryRepository) GetByName(_ context.Context, name string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byName[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := m.byID[id]
	return &u, nil
}

func (m *memoryRepository) List(_ context.Context) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRepository) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.byID), nil
}

func (m *memoryRepository) SetPrivilege(_ context.Context, id int64, p domain.Privilege) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.byID[id]; ok {
		u.Privilege = p
		m.byID[id] = u
	}
	return nil
}
