package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	t.Run("should render a single violation", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")

		assert.Equal(t, "validation error for field 'title': title is required", ve.Error())
	})

	t.Run("should render multiple violations", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		ve.AddInvalidValueError("priority", "urgent", "must be one of low, medium, high")

		msg := ve.Error()
		assert.Contains(t, msg, "multiple validation errors")
		assert.Contains(t, msg, "title")
		assert.Contains(t, msg, "priority")
	})
}

func TestValidationError_HasErrors(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("title")
	assert.True(t, ve.HasErrors())
}

func TestValidationError_Messages(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")
	ve.AddInvalidLengthError("category", "x", 0, 100)

	messages := ve.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "title is required", messages[0])
	assert.Equal(t, "category must be at most 100 characters long", messages[1])
}

func TestValidationError_GetFieldErrors(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("title")
	ve.AddInvalidLengthError("title", "x", 1, 255)
	ve.AddRequiredError("description")

	titleErrors := ve.GetFieldErrors("title")
	assert.Len(t, titleErrors, 2)
	assert.Len(t, ve.GetFieldErrors("description"), 1)
	assert.Empty(t, ve.GetFieldErrors("category"))
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	t.Run("should use the bare message for a single violation", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")

		assert.Equal(t, "title is required", ve.GetUserFriendlyMessage())
	})

	t.Run("should list multiple violations", func(t *testing.T) {
		ve := NewValidationError()
		ve.AddRequiredError("title")
		ve.AddRequiredError("description")

		msg := ve.GetUserFriendlyMessage()
		assert.Contains(t, msg, "Multiple validation errors occurred")
		assert.Contains(t, msg, "- title is required")
		assert.Contains(t, msg, "- description is required")
	})
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(assert.AnError))
}

func TestAddInvalidFormatError(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidFormatError("due_date", "next tuesday", "ISO-8601 date-time")

	require.Len(t, ve.Errors, 1)
	assert.Equal(t, ErrorTypeInvalidFormat, ve.Errors[0].Type)
	assert.Equal(t, "due_date has invalid format, expected: ISO-8601 date-time", ve.Errors[0].Message)
	assert.Equal(t, "next tuesday", ve.Errors[0].Value)
}
