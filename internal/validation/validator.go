package validation

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"todo-manager/internal/config"
)

// dueDateLayouts are the accepted ISO-8601 date-time shapes. time.RFC3339
// covers the trailing-"Z" UTC form.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range.
// Length is counted in characters, not bytes, so multibyte input is not
// penalized.
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(s)
	return length >= min && length <= max
}

// ParseDueDate parses an ISO-8601 date-time string. A trailing literal "Z" is
// accepted as UTC. The zero string is not a valid input; absence is handled by
// callers before parsing.
func (v *Validator) ParseDueDate(s string) (time.Time, bool) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DecodeTagList deserializes a JSON-array-shaped string into a tag list.
// Returns false when the text is not a JSON array of strings.
func (v *Validator) DecodeTagList(s string) ([]string, bool) {
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, false
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, true
}

// DecodeSettingsMap deserializes a JSON-object-shaped string into a settings
// map. Returns false when the text is not a JSON object.
func (v *Validator) DecodeSettingsMap(s string) (map[string]any, bool) {
	var settings map[string]any
	if err := json.Unmarshal([]byte(s), &settings); err != nil {
		return nil, false
	}
	if settings == nil {
		settings = map[string]any{}
	}
	return settings, true
}

// TitleMaxLength returns the configured maximum title length or the default
func (v *Validator) TitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 255
}

// DescriptionMaxLength returns the configured maximum description length or the default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 255
}

// CategoryMaxLength returns the configured maximum category length or the default
func (v *Validator) CategoryMaxLength() int {
	if v.config != nil {
		return v.config.Validation.CategoryMaxLength
	}
	return 100
}

// MaxTags returns the configured maximum tag count or the default
func (v *Validator) MaxTags() int {
	if v.config != nil {
		return v.config.Validation.MaxTags
	}
	return 20
}
