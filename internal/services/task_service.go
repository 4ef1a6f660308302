package services

import (
	"context"
	"fmt"

	"todo-manager/internal/config"
	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
	"todo-manager/internal/repository/sqlite"
	"todo-manager/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo            sqlite.Repository
	mapper          *domain.Mapper
	taskValidator   *validation.TaskValidator
	defaultPageSize int
	maxPageSize     int
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:            repo,
		mapper:          domain.NewMapper(),
		taskValidator:   validation.NewTaskValidatorWithConfig(cfg),
		defaultPageSize: cfg.Server.DefaultPageSize,
		maxPageSize:     cfg.Server.MaxPageSize,
	}
}

// Create validates the input, persists a new task for the owner and returns
// it. Tasks always start incomplete regardless of the submitted fields.
func (t *taskServiceImpl) Create(ctx context.Context, owner string, in domain.TaskInput) (*domain.Task, error) {
	task, err := t.taskValidator.ValidateCreate(in)
	if err != nil {
		return nil, wrapValidation(err)
	}
	task.Owner = owner

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := t.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// List returns the tasks visible to the owner, newest first. An empty result
// is an empty slice, never an error.
func (t *taskServiceImpl) List(ctx context.Context, owner string, filters ListFilters) ([]*domain.Task, error) {
	limit := filters.Limit
	if limit == 0 {
		limit = t.defaultPageSize
	}
	if limit < 1 || limit > t.maxPageSize {
		return nil, errors.NewInvalidInputError("limit", filters.Limit, fmt.Sprintf("must be between 1 and %d", t.maxPageSize))
	}
	if filters.Offset < 0 {
		return nil, errors.NewInvalidInputError("offset", filters.Offset, "must not be negative")
	}

	dbTasks, err := t.repo.ListTasks(ctx, sqlite.ListOptions{
		Owner:     owner,
		Completed: filters.Completed,
		Limit:     limit,
		Offset:    filters.Offset,
	})
	if err != nil {
		return nil, err
	}

	tasks := t.mapper.Task.FromDatabaseSlice(dbTasks)
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, nil
}

// Get retrieves a task owned by the actor. A task owned by someone else is
// reported as not found.
func (t *taskServiceImpl) Get(ctx context.Context, owner string, id int64) (*domain.Task, error) {
	dbTask, err := t.repo.GetTask(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// Update validates the supplied fields and merges them into the stored task.
// Omitted fields retain their prior values.
func (t *taskServiceImpl) Update(ctx context.Context, owner string, id int64, in domain.TaskUpdateInput) (*domain.Task, error) {
	update, err := t.taskValidator.ValidateUpdate(in)
	if err != nil {
		return nil, wrapValidation(err)
	}

	dbTask, err := t.repo.UpdateTask(ctx, id, owner, t.mapper.Task.UpdateToDatabase(update))
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// Delete permanently removes a task owned by the actor
func (t *taskServiceImpl) Delete(ctx context.Context, owner string, id int64) error {
	return t.repo.DeleteTask(ctx, id, owner)
}

// ToggleComplete flips the completion flag in one atomic read-modify-write
func (t *taskServiceImpl) ToggleComplete(ctx context.Context, owner string, id int64) (*domain.Task, error) {
	dbTask, err := t.repo.ToggleTask(ctx, id, owner)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// wrapValidation converts an aggregated validation error into the application
// error taxonomy while keeping the per-field details as the cause.
func wrapValidation(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	}
	return errors.NewValidationError("invalid task data", err)
}
