package alarm

import (
	"context"

	"github.com/Raimguhinov/alarmlog/internal/domain"
)

// Repository is the Alarm Store. Implementations wrap backing-store failures in domain.ErrStorage.
type Repository interface {
	Insert(ctx context.Context, a *domain.Alarm) (*domain.Alarm, error)
	Find(ctx context.Context, filter domain.AlarmFilter) ([]domain.Alarm, error)
	Clear(ctx context.Context, ids []int64) error
	Delete(ctx context.Context, ids []int64) error
}
