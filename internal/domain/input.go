package domain

// TaskInput carries raw task fields as submitted by a caller. Due date, tags
// and notification settings arrive as text (the wire and storage shape) and
// are interpreted during validation; empty strings mean "not provided".
type TaskInput struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	Priority             string `json:"priority"`
	DueDate              string `json:"due_date"`
	Category             string `json:"category"`
	Tags                 string `json:"tags"`
	NotificationSettings string `json:"notification_settings"`
}

// TaskUpdateInput carries raw partial-update fields. A nil field was absent
// from the request and must leave the stored value untouched.
type TaskUpdateInput struct {
	Title                *string `json:"title"`
	Description          *string `json:"description"`
	Completed            *bool   `json:"completed"`
	Priority             *string `json:"priority"`
	DueDate              *string `json:"due_date"`
	Category             *string `json:"category"`
	Tags                 *string `json:"tags"`
	NotificationSettings *string `json:"notification_settings"`
}

// IsEmpty reports whether the update input carries no fields at all.
func (in TaskUpdateInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Completed == nil &&
		in.Priority == nil && in.DueDate == nil && in.Category == nil &&
		in.Tags == nil && in.NotificationSettings == nil
}
