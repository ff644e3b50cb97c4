package user_test

import (
	"context"
	"testing"

	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/internal/user"
	user_db "github.com/Raimguhinov/alarmlog/internal/user/db"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T) (context.Context, *user.Backend) {
	t.Helper()
	b := user.New(user_db.NewMemoryRepository(), logger.NewNop())
	require.NoError(t, b.EnsureAdmin(context.Background(), "admin", "admin"))
	return context.Background(), b
}

func TestHashPassword(t *testing.T) {
	h := user.HashPassword("admin")
	assert.Len(t, h, 128)
	assert.Equal(t, "c7ad44cbad762a5da0a452f9e854fdc1e0e7a52a38015f23f3eab1d80b931dd472634dfac71cd34ebc35d16ab7fb8a90c81f975113d6c7538dc69dd8de9077ec", h)
}

func TestEnsureAdmin_SeedsOnce(t *testing.T) {
	ctx, b := newBackend(t)

	admin, err := b.GetByName(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.PrivilegeAdmin, admin.Privilege)
	assert.Equal(t, user.HashPassword("admin"), admin.HashPwd)

	require.NoError(t, b.EnsureAdmin(ctx, "admin", "other"))
	users, err := b.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuthenticate(t *testing.T) {
	ctx, b := newBackend(t)
	admin, err := b.GetByName(ctx, "admin")
	require.NoError(t, err)

	_, err = b.Authenticate(ctx, "nouser", "x")
	assert.ErrorIs(t, err, domain.ErrUserNotExist)
	assert.Contains(t, err.Error(), "does not exist")

	_, err = b.Authenticate(ctx, "admin", user.HashPassword("wrong"))
	assert.ErrorIs(t, err, domain.ErrIncorrectPassword)
	assert.Contains(t, err.Error(), "incorrect")

	id, err := b.Authenticate(ctx, "admin", user.HashPassword("admin"))
	require.NoError(t, err)
	assert.Equal(t, admin.ID, id)
}

func TestCreate(t *testing.T) {
	ctx, b := newBackend(t)

	u, err := b.Create(ctx, "carol", "digest")
	require.NoError(t, err)
	assert.Equal(t, domain.PrivilegeUser, u.Privilege)

	_, err = b.Create(ctx, "carol", "digest")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestPrivilegeAndDelete(t *testing.T) {
	ctx, b := newBackend(t)
	u, err := b.Create(ctx, "dave", "d")
	require.NoError(t, err)

	p, err := b.GetPrivilege(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PrivilegeUser, p)

	require.NoError(t, b.SetPrivilege(ctx, u.ID, domain.PrivilegeAdmin))
	p, err = b.GetPrivilege(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PrivilegeAdmin, p)

	assert.Error(t, b.SetPrivilege(ctx, u.ID, domain.Privilege(9)))

	require.NoError(t, b.Delete(ctx, u.ID))
	require.NoError(t, b.Delete(ctx, u.ID))

	_, err = b.GetPrivilege(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
