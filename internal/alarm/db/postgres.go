package alarm_db

import (
	"context"
	"fmt"

	"github.com/Raimguhinov/alarmlog/internal/alarm"
	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/Raimguhinov/alarmlog/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

type repository struct {
	client *postgres.Postgres
	logger *logger.Logger
}

func NewRepository(client *postgres.Postgres, logger *logger.Logger) alarm.Repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func (r *repository) storageErr(op string, err error) error {
	err = r.client.ToPgErr(err)
	r.logger.Error("postgres."+op, logger.Err(err))
	return fmt.Errorf("%w: %w", domain.ErrStorage, err)
}

func (r *repository) Insert(ctx context.Context, a *domain.Alarm) (*domain.Alarm, error) {
	q, args, err := insertQuery(r.client.Builder, a)
	if err != nil {
		return nil, fmt.Errorf("alarm_db - Insert - ToSql: %w", err)
	}

	stored := *a
	if err = r.client.Pool.QueryRow(ctx, q, args...).Scan(&stored.ID); err != nil {
		return nil, r.storageErr("Insert", err)
	}
	return &stored, nil
}

func (r *repository) Find(ctx context.Context, filter domain.AlarmFilter) ([]domain.Alarm, error) {
	q, args, err := findQuery(r.client.Builder, filter)
	if err != nil {
		return nil, fmt.Errorf("alarm_db - Find - ToSql: %w", err)
	}

	rows, err := r.client.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, r.storageErr("Find", err)
	}

	alarms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Alarm, error) {
		var a domain.Alarm
		err := row.Scan(&a.ID, &a.Timestamp, &a.Temperature, &a.SmokeDetected, &a.FireDetected, &a.Cleared)
		return a, err
	})
	if err != nil {
		return nil, r.storageErr("Find", err)
	}
	return alarms, nil
}

func (r *repository) Clear(ctx context.Context, ids []int64) error {
	q, args, err := clearQuery(r.client.Builder, ids)
	if err != nil {
		return fmt.Errorf("alarm_db - Clear - ToSql: %w", err)
	}

	if _, err = r.client.Pool.Exec(ctx, q, args...); err != nil {
		return r.storageErr("Clear", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, ids []int64) error {
	q, args, err := deleteQuery(r.client.Builder, ids)
	if err != nil {
		return fmt.Errorf("alarm_db - Delete - ToSql: %w", err)
	}

	if _, err = r.client.Pool.Exec(ctx, q, args...); err != nil {
		return r.storageErr("Delete", err)
	}
	return nil
}
