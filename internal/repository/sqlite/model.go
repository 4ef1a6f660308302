package sqlite

import "time"

// Task is the storage representation of a task row. Tags and
// NotificationSettings hold serialized JSON text; decoding to native values
// happens at the domain boundary, never here.
type Task struct {
	ID                   int64
	UserID               string
	Title                string
	Description          string
	Completed            bool
	Priority             string
	DueDate              *time.Time // Using pointer to allow NULL values
	Category             string
	Tags                 string
	NotificationSettings string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TaskUpdate carries the columns of a partial update. Nil fields are left
// untouched by UpdateTask.
type TaskUpdate struct {
	Title                *string
	Description          *string
	Completed            *bool
	Priority             *string
	DueDate              *time.Time
	Category             *string
	Tags                 *string
	NotificationSettings *string
}

// ListOptions contains all possible task listing parameters
type ListOptions struct {
	Owner     string
	Completed *bool
	Limit     int
	Offset    int
}
