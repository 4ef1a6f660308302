package services

import (
	"context"

	"todo-manager/internal/domain"
)

// ListFilters describes the optional filtering and paging of a task listing.
// A zero Limit means "use the configured default page size".
type ListFilters struct {
	Completed *bool
	Limit     int
	Offset    int
}

// TaskService handles the actor-scoped task lifecycle for the multi-user
// shape. Every operation is scoped to the owning actor; a task belonging to a
// different actor is indistinguishable from a missing one.
type TaskService interface {
	Create(ctx context.Context, owner string, in domain.TaskInput) (*domain.Task, error)
	List(ctx context.Context, owner string, filters ListFilters) ([]*domain.Task, error)
	Get(ctx context.Context, owner string, id int64) (*domain.Task, error)
	Update(ctx context.Context, owner string, id int64, in domain.TaskUpdateInput) (*domain.Task, error)
	Delete(ctx context.Context, owner string, id int64) error
	ToggleComplete(ctx context.Context, owner string, id int64) (*domain.Task, error)
}
