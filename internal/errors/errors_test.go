package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode string
		contains string
	}{
		{
			name:     "validation error",
			err:      NewValidationError("title is required", nil),
			wantType: ErrorTypeValidation,
			wantCode: "VALIDATION_FAILED",
			contains: "title is required",
		},
		{
			name:     "not found error",
			err:      NewNotFoundError("task", "7"),
			wantType: ErrorTypeNotFound,
			wantCode: "NOT_FOUND",
			contains: "task not found: 7",
		},
		{
			name:     "database error",
			err:      NewDatabaseError("insert task", fmt.Errorf("disk full")),
			wantType: ErrorTypeDatabase,
			wantCode: "DATABASE_ERROR",
			contains: "insert task",
		},
		{
			name:     "invalid input error",
			err:      NewInvalidInputError("limit", 500, "must be between 1 and 100"),
			wantType: ErrorTypeInvalidInput,
			wantCode: "INVALID_INPUT",
			contains: "limit",
		},
		{
			name:     "duplicate id error",
			err:      NewDuplicateIDError("task", "3"),
			wantType: ErrorTypeDuplicate,
			wantCode: "DUPLICATE_ID",
			contains: "already exists",
		},
		{
			name:     "authentication error",
			err:      NewAuthenticationError("invalid token", nil),
			wantType: ErrorTypeAuthentication,
			wantCode: "AUTHENTICATION_FAILED",
			contains: "invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.err.IsType(tt.wantType))
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Contains(t, tt.err.Error(), tt.contains)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewDatabaseError("query", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "underlying")
}

func TestAppError_Context(t *testing.T) {
	err := NewNotFoundError("task", "9")

	resource, ok := err.GetContext("resource")
	require.True(t, ok)
	assert.Equal(t, "task", resource)

	err.WithContext("attempt", 2)
	attempt, ok := err.GetContext("attempt")
	require.True(t, ok)
	assert.Equal(t, 2, attempt)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}

func TestIsErrorType(t *testing.T) {
	notFound := NewNotFoundError("task", "1")

	assert.True(t, IsErrorType(notFound, ErrorTypeNotFound))
	assert.False(t, IsErrorType(notFound, ErrorTypeDatabase))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeNotFound))
}

func TestIsErrorType_Wrapped(t *testing.T) {
	inner := NewNotFoundError("task", "1")
	wrapped := fmt.Errorf("while handling request: %w", inner)

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsErrorType(wrapped, ErrorTypeNotFound))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found passes through",
			err:  NewNotFoundError("task", "4"),
			want: "task not found: 4",
		},
		{
			name: "database errors are masked",
			err:  NewDatabaseError("insert", fmt.Errorf("boom")),
			want: "A database error occurred. Please try again.",
		},
		{
			name: "plain errors pass through",
			err:  fmt.Errorf("plain failure"),
			want: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", GetErrorCode(NewNotFoundError("task", "1")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(fmt.Errorf("plain")))
}
