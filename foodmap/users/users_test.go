package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, "A", "A@Ajou.ac.kr", []byte("hash"), RoleUser)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "B", "a@ajou.ac.kr ", []byte("hash"), RoleUser)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestFindByEmail_ReturnsCopy(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "A", "a@ajou.ac.kr", []byte("hash"), RoleUser)
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "A@AJOU.AC.KR")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	found.Role = RoleAdmin
	again, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleUser, again.Role)
}

func TestFindOrCreateByProvider_Idempotent(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	first, err := repo.FindOrCreateByProvider(ctx, "naver", "n-1", "n@naver.com", "네이버", "")
	require.NoError(t, err)

	second, err := repo.FindOrCreateByProvider(ctx, "naver", "n-1", "n@naver.com", "새 이름", "http://img")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "새 이름", second.Name)
	assert.Equal(t, "naver", second.Provider)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateRole(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.UpdateRole(ctx, "missing", RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)

	u, err := repo.Create(ctx, "A", "a@ajou.ac.kr", nil, RoleUser)
	require.NoError(t, err)

	updated, err := repo.UpdateRole(ctx, u.ID, RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, updated.Role)
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("user"))
	assert.True(t, IsValidRole("admin"))
	assert.False(t, IsValidRole("root"))
}
