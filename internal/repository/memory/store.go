// Package memory provides the in-process task store used by the single-user
// console shape. The store is not safe for concurrent mutation; callers that
// share a Store across goroutines must provide their own synchronization.
package memory

import (
	"fmt"
	"time"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
)

// Store holds task records keyed by identifier, with auto-increment ID
// management. Identifiers start at 1 and are never reused, even after the
// corresponding task is deleted.
type Store struct {
	tasks  map[int64]*domain.Task
	order  []int64
	nextID int64
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// GenerateNextID returns an identifier guaranteed not previously issued by
// this store instance.
func (s *Store) GenerateNextID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// Add persists a task under its identifier. A task whose ID was already used
// signals an identifier-generation bug and is rejected.
func (s *Store) Add(task domain.Task) error {
	if _, exists := s.tasks[task.ID]; exists {
		return errors.NewDuplicateIDError("task", fmt.Sprintf("%d", task.ID))
	}

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	stored := task
	s.tasks[task.ID] = &stored
	s.order = append(s.order, task.ID)
	return nil
}

// GetByID retrieves a task by its identifier
func (s *Store) GetByID(id int64) (*domain.Task, bool) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, false
	}
	return copyTask(task), true
}

// GetAll returns all tasks in insertion order
func (s *Store) GetAll() []*domain.Task {
	tasks := make([]*domain.Task, 0, len(s.tasks))
	for _, id := range s.order {
		if task, ok := s.tasks[id]; ok {
			tasks = append(tasks, copyTask(task))
		}
	}
	return tasks
}

// copyTask clones a stored record including its tag list and settings map, so
// mutating a returned task cannot change the store behind Update's back.
func copyTask(task *domain.Task) *domain.Task {
	copied := *task
	if task.Tags != nil {
		copied.Tags = make([]string, len(task.Tags))
		copy(copied.Tags, task.Tags)
	}
	if task.NotificationSettings != nil {
		settings := make(map[string]any, len(task.NotificationSettings))
		for k, v := range task.NotificationSettings {
			settings[k] = v
		}
		copied.NotificationSettings = settings
	}
	return &copied
}

// Update merges only the supplied fields into an existing task and refreshes
// UpdatedAt. Returns false if the identifier is absent.
func (s *Store) Update(id int64, update domain.TaskUpdate) bool {
	task, ok := s.tasks[id]
	if !ok {
		return false
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	if update.DueDate != nil {
		due := *update.DueDate
		task.DueDate = &due
	}
	if update.Category != nil {
		task.Category = *update.Category
	}
	if update.Tags != nil {
		task.Tags = append([]string(nil), (*update.Tags)...)
	}
	if update.NotificationSettings != nil {
		settings := make(map[string]any, len(*update.NotificationSettings))
		for k, v := range *update.NotificationSettings {
			settings[k] = v
		}
		task.NotificationSettings = settings
	}

	task.UpdatedAt = time.Now().UTC()
	return true
}

// Delete removes a task permanently. Returns false if the identifier is
// absent. The identifier is not recycled.
func (s *Store) Delete(id int64) bool {
	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of stored tasks
func (s *Store) Len() int {
	return len(s.tasks)
}
