package memory

import (
	"fmt"
	"testing"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredTask(store *Store, description string) domain.Task {
	task := domain.NewTask("")
	task.ID = store.GenerateNextID()
	task.Description = description
	return task
}

func TestStore_GenerateNextID(t *testing.T) {
	store := NewStore()

	t.Run("should start at one and increase monotonically", func(t *testing.T) {
		assert.Equal(t, int64(1), store.GenerateNextID())
		assert.Equal(t, int64(2), store.GenerateNextID())
		assert.Equal(t, int64(3), store.GenerateNextID())
	})
}

func TestStore_IDsNeverReused(t *testing.T) {
	store := NewStore()

	first := newStoredTask(store, "first")
	require.NoError(t, store.Add(first))
	second := newStoredTask(store, "second")
	require.NoError(t, store.Add(second))

	require.True(t, store.Delete(second.ID))

	third := newStoredTask(store, "third")
	require.NoError(t, store.Add(third))

	assert.Equal(t, int64(3), third.ID)
	_, ok := store.GetByID(second.ID)
	assert.False(t, ok)
}

func TestStore_Add(t *testing.T) {
	t.Run("should store a task and set timestamps", func(t *testing.T) {
		store := NewStore()
		task := newStoredTask(store, "buy milk")

		err := store.Add(task)
		require.NoError(t, err)

		stored, ok := store.GetByID(task.ID)
		require.True(t, ok)
		assert.Equal(t, "buy milk", stored.Description)
		assert.False(t, stored.CreatedAt.IsZero())
		assert.False(t, stored.UpdatedAt.IsZero())
	})

	t.Run("should reject a reused identifier", func(t *testing.T) {
		store := NewStore()
		task := newStoredTask(store, "original")
		require.NoError(t, store.Add(task))

		duplicate := task
		duplicate.Description = "imposter"
		err := store.Add(duplicate)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDuplicate))
		assert.Equal(t, 1, store.Len())
	})
}

func TestStore_GetByID(t *testing.T) {
	store := NewStore()
	task := newStoredTask(store, "read book")
	require.NoError(t, store.Add(task))

	t.Run("should return a copy, not the stored record", func(t *testing.T) {
		got, ok := store.GetByID(task.ID)
		require.True(t, ok)

		got.Description = "mutated"

		again, ok := store.GetByID(task.ID)
		require.True(t, ok)
		assert.Equal(t, "read book", again.Description)
	})

	t.Run("should report a missing identifier", func(t *testing.T) {
		_, ok := store.GetByID(999)
		assert.False(t, ok)
	})

	t.Run("should not share tags or settings with the stored record", func(t *testing.T) {
		tags := []string{"home"}
		settings := map[string]any{"email": true}
		require.True(t, store.Update(task.ID, domain.TaskUpdate{Tags: &tags, NotificationSettings: &settings}))

		got, ok := store.GetByID(task.ID)
		require.True(t, ok)
		got.Tags[0] = "mutated"
		got.NotificationSettings["email"] = false

		again, ok := store.GetByID(task.ID)
		require.True(t, ok)
		assert.Equal(t, []string{"home"}, again.Tags)
		assert.Equal(t, map[string]any{"email": true}, again.NotificationSettings)
	})
}

func TestStore_GetAll(t *testing.T) {
	store := NewStore()

	t.Run("should return empty for a fresh store", func(t *testing.T) {
		assert.Empty(t, store.GetAll())
	})

	t.Run("should return tasks in insertion order", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			require.NoError(t, store.Add(newStoredTask(store, fmt.Sprintf("task %d", i))))
		}

		tasks := store.GetAll()
		require.Len(t, tasks, 3)
		assert.Equal(t, "task 1", tasks[0].Description)
		assert.Equal(t, "task 2", tasks[1].Description)
		assert.Equal(t, "task 3", tasks[2].Description)
	})

	t.Run("should preserve order across deletion", func(t *testing.T) {
		require.True(t, store.Delete(2))

		tasks := store.GetAll()
		require.Len(t, tasks, 2)
		assert.Equal(t, int64(1), tasks[0].ID)
		assert.Equal(t, int64(3), tasks[1].ID)
	})
}

func TestStore_Update(t *testing.T) {
	store := NewStore()
	task := newStoredTask(store, "walk dog")
	require.NoError(t, store.Add(task))

	t.Run("should merge only supplied fields", func(t *testing.T) {
		completed := true
		require.True(t, store.Update(task.ID, domain.TaskUpdate{Completed: &completed}))

		updated, ok := store.GetByID(task.ID)
		require.True(t, ok)
		assert.True(t, updated.Completed)
		assert.Equal(t, "walk dog", updated.Description)
	})

	t.Run("should refresh UpdatedAt but not CreatedAt", func(t *testing.T) {
		before, _ := store.GetByID(task.ID)

		description := "walk the dog"
		require.True(t, store.Update(task.ID, domain.TaskUpdate{Description: &description}))

		after, _ := store.GetByID(task.ID)
		assert.Equal(t, before.CreatedAt, after.CreatedAt)
		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
	})

	t.Run("should deep-copy supplied tags", func(t *testing.T) {
		tags := []string{"home", "pets"}
		require.True(t, store.Update(task.ID, domain.TaskUpdate{Tags: &tags}))

		tags[0] = "mutated"

		updated, _ := store.GetByID(task.ID)
		assert.Equal(t, []string{"home", "pets"}, updated.Tags)
	})

	t.Run("should report a missing identifier", func(t *testing.T) {
		description := "nope"
		assert.False(t, store.Update(999, domain.TaskUpdate{Description: &description}))
	})
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	task := newStoredTask(store, "temporary")
	require.NoError(t, store.Add(task))

	t.Run("should remove an existing task", func(t *testing.T) {
		assert.True(t, store.Delete(task.ID))
		_, ok := store.GetByID(task.ID)
		assert.False(t, ok)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("should report a missing identifier", func(t *testing.T) {
		assert.False(t, store.Delete(task.ID))
	})
}
