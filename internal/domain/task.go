package domain

import "time"

// Priority represents the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid checks if the priority is one of the supported levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a task in the domain model.
// Tags and NotificationSettings are always the decoded native values here;
// their JSON-string encoding is a storage-boundary concern.
type Task struct {
	ID                   int64          `json:"id"`
	Owner                string         `json:"user_id,omitempty"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	Completed            bool           `json:"completed"`
	Priority             Priority       `json:"priority"`
	DueDate              *time.Time     `json:"due_date,omitempty"`
	Category             string         `json:"category,omitempty"`
	Tags                 []string       `json:"tags"`
	NotificationSettings map[string]any `json:"notification_settings"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// NewTask creates a Task with the documented defaults applied.
func NewTask(title string) Task {
	return Task{
		Title:                title,
		Priority:             PriorityMedium,
		Tags:                 []string{},
		NotificationSettings: map[string]any{},
	}
}

// TaskUpdate is a partial-update request. Only non-nil fields are merged into
// the stored task; this is the explicit whitelist of mergeable fields, so
// unknown keys in a request are dropped during decoding rather than applied
// reflectively.
type TaskUpdate struct {
	Title                *string         `json:"title"`
	Description          *string         `json:"description"`
	Completed            *bool           `json:"completed"`
	Priority             *Priority       `json:"priority"`
	DueDate              *time.Time      `json:"due_date"`
	Category             *string         `json:"category"`
	Tags                 *[]string       `json:"-"`
	NotificationSettings *map[string]any `json:"-"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil &&
		u.Priority == nil && u.DueDate == nil && u.Category == nil &&
		u.Tags == nil && u.NotificationSettings == nil
}

// ListOptions describes filtering and paging for task listings.
type ListOptions struct {
	Owner     string
	Completed *bool
	Limit     int
	Offset    int
}

// StatusGlyph returns the console marker for the task's completion state.
func (t Task) StatusGlyph() string {
	if t.Completed {
		return "✓"
	}
	return "○"
}

// StatusText returns the long-form completion state for display.
func (t Task) StatusText() string {
	if t.Completed {
		return "✓ Completed"
	}
	return "○ Incomplete"
}
