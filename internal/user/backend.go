package user

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
)

type Backend struct {
	repo   Repository
	logger *logger.Logger
}

func New(repository Repository, l *logger.Logger) *Backend {
	return &Backend{
		repo:   repository,
		logger: l.With(slog.String("component", "user")),
	}
}

// HashPassword returns the lowercase hex sha512 digest clients send as hash_pwd.
func HashPassword(password string) string {
	sum := sha512.Sum512([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Create registers a user with the default privilege. The name check is repeated by the
// store's unique constraint, so a concurrent duplicate also yields domain.ErrUserExists.
func (b *Backend) Create(ctx context.Context, name, hashPwd string) (*domain.User, error) {
	_, err := b.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrNotFound):
		b.logger.Error("user.Create", logger.Err(err))
		return nil, err
	}

	u, err := b.repo.Create(ctx, &domain.User{Name: name, HashPwd: hashPwd, Privilege: domain.PrivilegeUser})
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			b.logger.Error("user.Create", logger.Err(err))
		}
		return nil, err
	}
	b.logger.Info("user created", slog.String("name", u.Name), slog.Int64("id", u.ID))
	return u, nil
}

// Delete removes the user; absent ids are a no-op.
func (b *Backend) Delete(ctx context.Context, id int64) error {
	if err := b.repo.Delete(ctx, id); err != nil {
		b.logger.Error("user.Delete", logger.Err(err))
		return err
	}
	return nil
}

// Authenticate compares hashPwd with the stored digest and returns the user id on match.
func (b *Backend) Authenticate(ctx context.Context, name, hashPwd string) (int64, error) {
	u, err := b.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, domain.ErrUserNotExist
		}
		b.logger.Error("user.Authenticate", logger.Err(err))
		return 0, err
	}

	// TODO: plain comparison of a client-side digest; decide on server-side salting with the front-end owners.
	if u.HashPwd != hashPwd {
		return 0, domain.ErrIncorrectPassword
	}
	return u.ID, nil
}

// SetPrivilege updates the privilege; absent ids are a no-op.
func (b *Backend) SetPrivilege(ctx context.Context, id int64, p domain.Privilege) error {
	if !p.Valid() {
		return fmt.Errorf("invalid privilege %d", int(p))
	}
	if err := b.repo.SetPrivilege(ctx, id, p); err != nil {
		b.logger.Error("user.SetPrivilege", logger.Err(err))
		return err
	}
	return nil
}

// GetPrivilege returns domain.ErrNotFound for unknown users.
func (b *Backend) GetPrivilege(ctx context.Context, id int64) (domain.Privilege, error) {
	u, err := b.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return u.Privilege, nil
}

func (b *Backend) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return b.repo.GetByID(ctx, id)
}

func (b *Backend) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return b.repo.GetByName(ctx, name)
}

func (b *Backend) List(ctx context.Context) ([]domain.User, error) {
	return b.repo.List(ctx)
}

// EnsureAdmin seeds an admin account when the user table is empty.
func (b *Backend) EnsureAdmin(ctx context.Context, name, password string) error {
	n, err := b.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("user - EnsureAdmin - Count: %w", err)
	}
	if n != 0 {
		return nil
	}

	u, err := b.Create(ctx, name, HashPassword(password))
	if err != nil {
		return fmt.Errorf("user - EnsureAdmin - Create: %w", err)
	}
	if err = b.SetPrivilege(ctx, u.ID, domain.PrivilegeAdmin); err != nil {
		return fmt.Errorf("user - EnsureAdmin - SetPrivilege: %w", err)
	}

	b.logger.Info("default admin seeded", slog.String("name", name))
	return nil
}
