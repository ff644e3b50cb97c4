package storage

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Raimguhinov/alarmlog/internal/alarm"
	alarm_db "github.com/Raimguhinov/alarmlog/internal/alarm/db"
	"github.com/Raimguhinov/alarmlog/internal/migrations"
	"github.com/Raimguhinov/alarmlog/internal/user"
	user_db "github.com/Raimguhinov/alarmlog/internal/user/db"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/Raimguhinov/alarmlog/pkg/postgres"
)

// Storage bundles the repositories backing the service.
type Storage struct {
	Alarms alarm.Repository
	Users  user.Repository
	close  func()
}

// Close releases the backing connections.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewFromURL opens Postgres (running migrations) for postgres:// URLs and
// in-memory repositories for memory://.
func NewFromURL(ctx context.Context, storageURL string, l *logger.Logger, opts ...postgres.Option) (*Storage, error) {
	u, err := url.Parse(storageURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing storage URL: %s", err.Error())
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		pg, err := postgres.New(ctx, l, storageURL, opts...)
		if err != nil {
			return nil, err
		}
		if err = pg.Migrate(ctx, migrations.FS); err != nil {
			pg.Close()
			return nil, err
		}
		return &Storage{
			Alarms: alarm_db.NewRepository(pg, l),
			Users:  user_db.NewRepository(pg, l),
			close:  pg.Close,
		}, nil
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("no storage provider found for %s:// URL", u.Scheme)
	}
}

// NewMemory returns process-local repositories.
func NewMemory() *Storage {
	return &Storage{
		Alarms: alarm_db.NewMemoryRepository(),
		Users:  user_db.NewMemoryRepository(),
	}
}
