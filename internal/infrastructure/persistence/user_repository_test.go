package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/registry/backend/internal/domain/identity"
	"github.com/registry/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewGormUserRepository(newTestDatabase(t).DB)

	user, err := identity.NewUser("Registrar", "correct-horse-battery")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "registrar", byID.Username)
	assert.Equal(t, identity.UserStatusActive, byID.Status)
	assert.True(t, byID.VerifyPassword("correct-horse-battery"))

	byName, err := repo.FindByUsername(ctx, "  REGISTRAR ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	exists, err := repo.ExistsByUsername(ctx, "registrar")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewGormUserRepository(newTestDatabase(t).DB)

	first, err := identity.NewUser("clerk", "password-one")
	require.NoError(t, err)
	second, err := identity.NewUser("CLERK", "password-two")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, first))
	assert.ErrorIs(t, repo.Create(ctx, second), shared.ErrAlreadyExists)
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewGormUserRepository(newTestDatabase(t).DB)

	user, err := identity.NewUser("clerk", "password-one")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, user))

	for range 3 {
		user.RecordLoginFailure(3, time.Minute)
	}
	require.NoError(t, repo.Update(ctx, user))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, identity.UserStatusLocked, stored.Status)
	assert.True(t, stored.IsLocked())
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewGormUserRepository(newTestDatabase(t).DB)

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = repo.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	ghost, err := identity.NewUser("ghost", "password-one")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, ghost), shared.ErrNotFound)
}
