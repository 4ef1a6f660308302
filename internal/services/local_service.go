package services

import (
	"todo-manager/internal/config"
	"todo-manager/internal/domain"
	"todo-manager/internal/repository/memory"
	"todo-manager/internal/validation"
)

// LocalTaskService is the single-user shape of the task service: one implicit
// actor, an in-process store and boolean success results. Like its store it is
// not safe for concurrent use without external synchronization.
type LocalTaskService struct {
	store         *memory.Store
	taskValidator *validation.TaskValidator
}

// NewLocalTaskService creates a service over a fresh in-memory store
func NewLocalTaskService(cfg *config.Config) *LocalTaskService {
	return &LocalTaskService{
		store:         memory.NewStore(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// AddTask adds a new task with the given description. Returns false when the
// description is empty or exceeds the configured bound; nothing is persisted
// on failure.
func (s *LocalTaskService) AddTask(description string) bool {
	if err := s.taskValidator.ValidateDescription(description); err != nil {
		return false
	}

	task := domain.NewTask("")
	task.ID = s.store.GenerateNextID()
	task.Description = description

	return s.store.Add(task) == nil
}

// GetAllTasks returns all tasks in the order they were added
func (s *LocalTaskService) GetAllTasks() []*domain.Task {
	return s.store.GetAll()
}

// GetTask returns a specific task by ID
func (s *LocalTaskService) GetTask(id int64) (*domain.Task, bool) {
	return s.store.GetByID(id)
}

// UpdateTaskDescription replaces the description of an existing task. Returns
// false when the new description is invalid or the task does not exist.
func (s *LocalTaskService) UpdateTaskDescription(id int64, description string) bool {
	if err := s.taskValidator.ValidateDescription(description); err != nil {
		return false
	}
	return s.store.Update(id, domain.TaskUpdate{Description: &description})
}

// MarkTaskComplete marks a task as complete
func (s *LocalTaskService) MarkTaskComplete(id int64) bool {
	completed := true
	return s.store.Update(id, domain.TaskUpdate{Completed: &completed})
}

// ToggleTaskComplete flips a task's completion status
func (s *LocalTaskService) ToggleTaskComplete(id int64) bool {
	task, ok := s.store.GetByID(id)
	if !ok {
		return false
	}
	flipped := !task.Completed
	return s.store.Update(id, domain.TaskUpdate{Completed: &flipped})
}

// DeleteTask removes a task permanently
func (s *LocalTaskService) DeleteTask(id int64) bool {
	return s.store.Delete(id)
}

// TaskCount returns the number of stored tasks
func (s *LocalTaskService) TaskCount() int {
	return s.store.Len()
}
