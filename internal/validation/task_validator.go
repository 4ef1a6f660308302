package validation

import (
	"fmt"

	"todo-manager/internal/config"
	"todo-manager/internal/domain"
)

// TaskValidator provides validation for task creation and partial updates.
// All checks for one submission are collected into a single ValidationError
// so the caller sees every violation at once.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateCreate checks raw task input and, when valid, returns the domain
// task with defaults applied. Creation always starts incomplete; tags and
// notification settings normalize to empty collections when absent. The title
// is stored exactly as submitted; trimming applies only to the emptiness
// check.
func (tv *TaskValidator) ValidateCreate(in domain.TaskInput) (domain.Task, error) {
	ve := NewValidationError()

	tv.checkTitle(ve, in.Title)
	tv.checkDescription(ve, in.Description)
	tv.checkCategory(ve, in.Category)

	task := domain.NewTask(in.Title)
	task.Description = in.Description
	task.Category = in.Category

	if in.Priority != "" {
		priority := domain.Priority(in.Priority)
		if !priority.IsValid() {
			ve.AddInvalidValueError("priority", in.Priority, "must be one of low, medium, high")
		} else {
			task.Priority = priority
		}
	}

	if in.DueDate != "" {
		if due, ok := tv.validator.ParseDueDate(in.DueDate); ok {
			task.DueDate = &due
		} else {
			ve.AddInvalidFormatError("due_date", in.DueDate, "ISO-8601 date-time")
		}
	}

	if tags, ok := tv.checkTags(ve, in.Tags); ok {
		task.Tags = tags
	}
	if settings, ok := tv.checkNotificationSettings(ve, in.NotificationSettings); ok {
		task.NotificationSettings = settings
	}

	if ve.HasErrors() {
		return domain.Task{}, ve
	}
	return task, nil
}

// ValidateUpdate checks raw partial-update input and, when valid, returns the
// typed update carrying only the fields that were present. Nil input fields
// stay nil so omitted fields retain their stored values.
func (tv *TaskValidator) ValidateUpdate(in domain.TaskUpdateInput) (domain.TaskUpdate, error) {
	ve := NewValidationError()
	var update domain.TaskUpdate

	if in.Title != nil {
		tv.checkTitle(ve, *in.Title)
		update.Title = in.Title
	}
	if in.Description != nil {
		tv.checkDescription(ve, *in.Description)
		update.Description = in.Description
	}
	if in.Completed != nil {
		update.Completed = in.Completed
	}
	if in.Priority != nil {
		priority := domain.Priority(*in.Priority)
		if !priority.IsValid() {
			ve.AddInvalidValueError("priority", *in.Priority, "must be one of low, medium, high")
		} else {
			update.Priority = &priority
		}
	}
	if in.DueDate != nil && *in.DueDate != "" {
		if due, ok := tv.validator.ParseDueDate(*in.DueDate); ok {
			update.DueDate = &due
		} else {
			ve.AddInvalidFormatError("due_date", *in.DueDate, "ISO-8601 date-time")
		}
	}
	if in.Category != nil {
		tv.checkCategory(ve, *in.Category)
		update.Category = in.Category
	}
	if in.Tags != nil {
		if tags, ok := tv.checkTags(ve, *in.Tags); ok {
			update.Tags = &tags
		}
	}
	if in.NotificationSettings != nil {
		if settings, ok := tv.checkNotificationSettings(ve, *in.NotificationSettings); ok {
			update.NotificationSettings = &settings
		}
	}

	if ve.HasErrors() {
		return domain.TaskUpdate{}, ve
	}
	return update, nil
}

// ValidateDescription checks a console-shape task description: non-empty
// after trimming and within the configured bound.
func (tv *TaskValidator) ValidateDescription(description string) error {
	ve := NewValidationError()

	if !tv.validator.IsNonEmptyString(description) {
		ve.AddRequiredError("description")
		return ve
	}
	if !tv.validator.IsValidStringLength(description, 1, tv.validator.DescriptionMaxLength()) {
		ve.AddInvalidLengthError("description", description, 1, tv.validator.DescriptionMaxLength())
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (tv *TaskValidator) checkTitle(ve *ValidationError, title string) {
	if !tv.validator.IsNonEmptyString(title) {
		ve.AddRequiredError("title")
		return
	}
	if !tv.validator.IsValidStringLength(title, 1, tv.validator.TitleMaxLength()) {
		ve.AddInvalidLengthError("title", title, 1, tv.validator.TitleMaxLength())
	}
}

// checkDescription validates an optional description; absence is allowed, but
// a provided value must fit the configured bound.
func (tv *TaskValidator) checkDescription(ve *ValidationError, description string) {
	if description == "" {
		return
	}
	if !tv.validator.IsValidStringLength(description, 0, tv.validator.DescriptionMaxLength()) {
		ve.AddInvalidLengthError("description", description, 0, tv.validator.DescriptionMaxLength())
	}
}

func (tv *TaskValidator) checkCategory(ve *ValidationError, category string) {
	if category == "" {
		return
	}
	if !tv.validator.IsValidStringLength(category, 0, tv.validator.CategoryMaxLength()) {
		ve.AddInvalidLengthError("category", category, 0, tv.validator.CategoryMaxLength())
	}
}

// checkTags interprets a JSON-array-shaped tags string. Absent or empty input
// normalizes to an empty list rather than being rejected.
func (tv *TaskValidator) checkTags(ve *ValidationError, raw string) ([]string, bool) {
	if raw == "" {
		return []string{}, true
	}
	tags, ok := tv.validator.DecodeTagList(raw)
	if !ok {
		ve.AddInvalidFormatError("tags", raw, "JSON array of strings")
		return nil, false
	}
	if len(tags) > tv.validator.MaxTags() {
		ve.AddInvalidValueError("tags", len(tags), fmt.Sprintf("too many tags (maximum %d allowed)", tv.validator.MaxTags()))
		return nil, false
	}
	return tags, true
}

// checkNotificationSettings interprets a JSON-object-shaped settings string.
// Absent or empty input normalizes to an empty mapping.
func (tv *TaskValidator) checkNotificationSettings(ve *ValidationError, raw string) (map[string]any, bool) {
	if raw == "" {
		return map[string]any{}, true
	}
	settings, ok := tv.validator.DecodeSettingsMap(raw)
	if !ok {
		ve.AddInvalidFormatError("notification_settings", raw, "JSON object")
		return nil, false
	}
	return settings, true
}
