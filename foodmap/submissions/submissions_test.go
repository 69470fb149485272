package submissions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, Input{RestaurantName: "a", Category: "한식", Location: "정문"}, "홍길동", "hong@ajou.ac.kr")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, first.Status)

	second, err := repo.Create(ctx, Input{RestaurantName: "b", Category: "중식", Location: "후문"}, "", "")
	require.NoError(t, err)

	_, err = repo.UpdateStatus(ctx, first.ID, StatusApproved)
	require.NoError(t, err)

	pending, err := repo.List(ctx, StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), ErrNotFound)

	_, err = repo.UpdateStatus(ctx, first.ID, StatusRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus(""))
}
