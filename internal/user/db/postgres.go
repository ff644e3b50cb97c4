package user_db

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/internal/user"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/Raimguhinov/alarmlog/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

const table = "users"

var columns = []string{"id", "name", "hash_pwd", "privilege"}

type repository struct {
	client *postgres.Postgres
	logger *logger.Logger
}

func NewRepository(client *postgres.Postgres, logger *logger.Logger) user.Repository {
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

func (r *repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	existsQ, existsArgs, err := existsQuery(r.client.Builder, u.Name)
	if err != nil {
		return nil, fmt.Errorf("user_db - Create - ToSql: %w", err)
	}
	insertQ, insertArgs, err := insertQuery(r.client.Builder, u)
	if err != nil {
		return nil, fmt.Errorf("user_db - Create - ToSql: %w", err)
	}

	stored := *u
	err = r.client.InTx(ctx, func(tx *postgres.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, existsQ, existsArgs...).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return domain.ErrUserExists
		}
		return tx.QueryRow(ctx, insertQ, insertArgs...).Scan(&stored.ID)
	})
	switch {
	case err == nil:
		return &stored, nil
	case isNameTaken(err):
		return nil, domain.ErrUserExists
	default:
		return nil, r.storageErr("Create", err)
	}
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	q, args, err := r.client.Builder.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("user_db - Delete - ToSql: %w", err)
	}
	if _, err = r.client.Pool.Exec(ctx, q, args...); err != nil {
		return r.storageErr("Delete", err)
	}
	return nil
}

func (r *repository) getOne(ctx context.Context, op string, pred sq.Eq) (*domain.User, error) {
	q, args, err := selectQuery(r.client.Builder).Where(pred).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("user_db - %s - ToSql: %w", op, err)
	}

	var u domain.User
	err = r.client.Pool.QueryRow(ctx, q, args...).Scan(&u.ID, &u.Name, &u.HashPwd, &u.Privilege)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, r.storageErr(op, err)
	}
	return &u, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", sq.Eq{"id": id})
}

func (r *repository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return r.getOne(ctx, "GetByName", sq.Eq{"name": name})
}

func (r *repository) List(ctx context.Context) ([]domain.User, error) {
	q, args, err := selectQuery(r.client.Builder).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("user_db - List - ToSql: %w", err)
	}

	rows, err := r.client.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, r.storageErr("List", err)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		var u domain.User
		err := row.Scan(&u.ID, &u.Name, &u.HashPwd, &u.Privilege)
		return u, err
	})
	if err != nil {
		return nil, r.storageErr("List", err)
	}
	return users, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	q, args, err := r.client.Builder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("user_db - Count - ToSql: %w", err)
	}

	var n int
	if err = r.client.Pool.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, r.storageErr("Count", err)
	}
	return n, nil
}

func (r *repository) SetPrivilege(ctx context.Context, id int64, p domain.Privilege) error {
	q, args, err := privilegeQuery(r.client.Builder, id, p)
	if err != nil {
		return fmt.Errorf("user_db - SetPrivilege - ToSql: %w", err)
	}
	if _, err = r.client.Pool.Exec(ctx, q, args...); err != nil {
		return r.storageErr("SetPrivilege", err)
	}
	return nil
}

// isNameTaken reports a duplicate name, whether caught by the EXISTS check or by the
// UNIQUE constraint of a concurrent insert.
func isNameTaken(err error) bool {
	return errors.Is(err, domain.ErrUserExists) || postgres.IsUniqueViolation(err)
}

func selectQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(columns...).From(table)
}

func existsQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("1").From(table).Where(sq.Eq{"name": name}).Prefix("SELECT EXISTS (").Suffix(")").ToSql()
}

func insertQuery(b sq.StatementBuilderType, u *domain.User) (string, []any, error) {
	return b.Insert(table).
		Columns("name", "hash_pwd", "privilege").
		Values(u.Name, u.HashPwd, int(u.Privilege)).
		Suffix("RETURNING id").
		ToSql()
}

func privilegeQuery(b sq.StatementBuilderType, id int64, p domain.Privilege) (string, []any, error) {
	return b.Update(table).Set("privilege", int(p)).Where(sq.Eq{"id": id}).ToSql()
}
