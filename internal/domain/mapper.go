package domain

import (
	"encoding/json"

	"todo-manager/internal/repository/sqlite"
)

// EncodeTags serializes a tag list to its JSON-array storage form. A nil list
// encodes as "[]".
func EncodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// DecodeTags deserializes the JSON-array storage form of a tag list. Empty or
// undecodable text yields an empty list so a corrupt column never surfaces as
// a nil slice.
func DecodeTags(s string) []string {
	if s == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}

// EncodeNotificationSettings serializes a settings map to its JSON-object
// storage form. A nil map encodes as "{}".
func EncodeNotificationSettings(settings map[string]any) string {
	if len(settings) == 0 {
		return "{}"
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// DecodeNotificationSettings deserializes the JSON-object storage form of a
// settings map.
func DecodeNotificationSettings(s string) map[string]any {
	if s == "" {
		return map[string]any{}
	}
	var settings map[string]any
	if err := json.Unmarshal([]byte(s), &settings); err != nil || settings == nil {
		return map[string]any{}
	}
	return settings
}

// TaskMapper handles conversion between domain and database Task models. The
// JSON-string encoding of tags and notification settings happens only here,
// at the store boundary.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:                   domainTask.ID,
		UserID:               domainTask.Owner,
		Title:                domainTask.Title,
		Description:          domainTask.Description,
		Completed:            domainTask.Completed,
		Priority:             string(domainTask.Priority),
		DueDate:              domainTask.DueDate,
		Category:             domainTask.Category,
		Tags:                 EncodeTags(domainTask.Tags),
		NotificationSettings: EncodeNotificationSettings(domainTask.NotificationSettings),
		CreatedAt:            domainTask.CreatedAt,
		UpdatedAt:            domainTask.UpdatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:                   dbTask.ID,
		Owner:                dbTask.UserID,
		Title:                dbTask.Title,
		Description:          dbTask.Description,
		Completed:            dbTask.Completed,
		Priority:             Priority(dbTask.Priority),
		DueDate:              dbTask.DueDate,
		Category:             dbTask.Category,
		Tags:                 DecodeTags(dbTask.Tags),
		NotificationSettings: DecodeNotificationSettings(dbTask.NotificationSettings),
		CreatedAt:            dbTask.CreatedAt,
		UpdatedAt:            dbTask.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		converted := m.FromDatabase(*task)
		domainTasks[i] = &converted
	}
	return domainTasks
}

// UpdateToDatabase converts a domain partial update to its database form.
func (m *TaskMapper) UpdateToDatabase(update TaskUpdate) sqlite.TaskUpdate {
	dbUpdate := sqlite.TaskUpdate{
		Title:       update.Title,
		Description: update.Description,
		Completed:   update.Completed,
		DueDate:     update.DueDate,
		Category:    update.Category,
	}
	if update.Priority != nil {
		priority := string(*update.Priority)
		dbUpdate.Priority = &priority
	}
	if update.Tags != nil {
		tags := EncodeTags(*update.Tags)
		dbUpdate.Tags = &tags
	}
	if update.NotificationSettings != nil {
		settings := EncodeNotificationSettings(*update.NotificationSettings)
		dbUpdate.NotificationSettings = &settings
	}
	return dbUpdate
}

// ListOptionsMapper handles conversion between domain and database ListOptions.
type ListOptionsMapper struct{}

// NewListOptionsMapper creates a new ListOptionsMapper instance.
func NewListOptionsMapper() *ListOptionsMapper {
	return &ListOptionsMapper{}
}

// ToDatabase converts domain ListOptions to database ListOptions.
func (m *ListOptionsMapper) ToDatabase(opts ListOptions) sqlite.ListOptions {
	return sqlite.ListOptions{
		Owner:     opts.Owner,
		Completed: opts.Completed,
		Limit:     opts.Limit,
		Offset:    opts.Offset,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task        *TaskMapper
	ListOptions *ListOptionsMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:        NewTaskMapper(),
		ListOptions: NewListOptionsMapper(),
	}
}
