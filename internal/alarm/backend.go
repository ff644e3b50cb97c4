package alarm

import (
	"context"
	"log/slog"
	"time"

	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
)

type Backend struct {
	repo   Repository
	logger *logger.Logger
	now    func() time.Time
}

func New(repository Repository, l *logger.Logger) *Backend {
	return &Backend{
		repo:   repository,
		logger: l.With(slog.String("component", "alarm")),
		now:    time.Now,
	}
}

// Add stores a new uncleared alarm; a zero timestamp is replaced by the current time.
func (b *Backend) Add(ctx context.Context, a domain.Alarm) (*domain.Alarm, error) {
	if a.Timestamp.IsZero() {
		a.Timestamp = b.now()
	}
	a.ID = 0
	a.Cleared = false

	stored, err := b.repo.Insert(ctx, &a)
	if err != nil {
		b.logger.Error("alarm.Add", logger.Err(err))
		return nil, err
	}
	b.logger.Debug("alarm added", slog.Int64("id", stored.ID))
	return stored, nil
}

func (b *Backend) List(ctx context.Context, filter domain.AlarmFilter) ([]domain.Alarm, error) {
	alarms, err := b.repo.Find(ctx, filter)
	if err != nil {
		b.logger.Error("alarm.List", logger.Err(err))
		return nil, err
	}
	return alarms, nil
}

// Clear marks the given alarms as cleared. Unknown ids are ignored.
func (b *Backend) Clear(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := b.repo.Clear(ctx, ids); err != nil {
		b.logger.Error("alarm.Clear", logger.Err(err))
		return err
	}
	return nil
}

// Delete removes the given alarms. Unknown ids are ignored.
func (b *Backend) Delete(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := b.repo.Delete(ctx, ids); err != nil {
		b.logger.Error("alarm.Delete", logger.Err(err))
		return err
	}
	return nil
}
