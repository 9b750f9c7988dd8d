package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/projects-service/internal/projects/domain"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, domain.NewProject("P1", "Demo", "", []string{"alice"}, 0, nil))
	require.NoError(t, err)
	assert.Len(t, created.ID, 24)
	assert.Equal(t, []string{}, created.HardwareSetID)

	t.Run("get returns the created record", func(t *testing.T) {
		got, err := repo.GetByProjectID(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("duplicate project_id is rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, domain.NewProject("P1", "Other", "", nil, 0, nil))
		assert.ErrorIs(t, err, domain.ErrDuplicate)
	})

	t.Run("update merges only given fields", func(t *testing.T) {
		updated, err := repo.Update(ctx, "P1", map[string]interface{}{
			domain.FieldProjectDesc: "updated",
			domain.FieldProjectID:   "P2",
		})
		require.NoError(t, err)
		assert.Equal(t, "P1", updated.ProjectID)
		assert.Equal(t, "Demo", updated.ProjectName)
		assert.Equal(t, "updated", updated.ProjectDesc)
		assert.Equal(t, created.ID, updated.ID)
	})

	t.Run("update of unknown key is not found", func(t *testing.T) {
		_, err := repo.Update(ctx, "nope", map[string]interface{}{domain.FieldProjectDesc: "x"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returned records do not alias storage", func(t *testing.T) {
		got, err := repo.GetByProjectID(ctx, "P1")
		require.NoError(t, err)
		got.MembersList[0] = "mallory"

		again, err := repo.GetByProjectID(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, again.MembersList)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		_, err := repo.Create(ctx, domain.NewProject("P0", "Zero", "", nil, 0, nil))
		require.NoError(t, err)

		items, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "P1", items[0].ProjectID)
		assert.Equal(t, "P0", items[1].ProjectID)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		ok, err := repo.Delete(ctx, "P1")
		require.NoError(t, err)
		assert.True(t, ok)

		_, err = repo.GetByProjectID(ctx, "P1")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		ok, err = repo.Delete(ctx, "P1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryRepository_EmptyList(t *testing.T) {
	items, err := NewMemoryRepository().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
