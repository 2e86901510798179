package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nsmosa/alumni-portal-api/internal/models"
	"github.com/nsmosa/alumni-portal-api/internal/store"
)

func seedAdmins(t *testing.T) *AdminUserRepository {
	t.Helper()
	ctx := context.Background()
	repo := NewAdminUserRepository(store.NewMemoryStore())
	require.NoError(t, repo.Append(ctx, models.AdminUser{
		ID: "u1", Username: "SuperAdmin", Email: "super@nsmosa.org", Role: models.RoleSuperAdmin,
	}))
	require.NoError(t, repo.Append(ctx, models.AdminUser{
		ID: "u2", Username: "rep", Email: "Rep@nsmosa.org", Role: models.RoleRepresentativeAdmin,
	}))
	return repo
}

func TestAdminUserRepositoryFindByLogin(t *testing.T) {
	ctx := context.Background()
	repo := seedAdmins(t)

	byUsername, err := repo.FindByLogin(ctx, "superadmin")
	require.NoError(t, err)
	require.Equal(t, "u1", byUsername.ID)

	byEmail, err := repo.FindByLogin(ctx, "  rep@NSMOSA.org ")
	require.NoError(t, err)
	require.Equal(t, "u2", byEmail.ID)

	_, err = repo.FindByLogin(ctx, "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAdminUserRepositoryUsernameExists(t *testing.T) {
	ctx := context.Background()
	repo := seedAdmins(t)

	exists, err := repo.UsernameExists(ctx, "REP")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = repo.UsernameExists(ctx, "other")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestAdminUserRepositoryRemoveExactID(t *testing.T) {
	ctx := context.Background()
	repo := seedAdmins(t)

	removed, err := repo.Remove(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, models.RoleSuperAdmin, removed.Role)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "u2", remaining[0].ID)

	_, err = repo.Remove(ctx, "u1")
	require.ErrorIs(t, err, ErrNotFound)
}
