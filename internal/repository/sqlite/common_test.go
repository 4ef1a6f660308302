package sqlite

import (
	"fmt"
	"testing"
	"time"

	"todo-manager/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResult implements sql.Result for testing
type mockResult struct {
	lastInsertID int64
	rowsAffected int64
	err          error
}

func (m mockResult) LastInsertId() (int64, error) {
	return m.lastInsertID, m.err
}

func (m mockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name     string
		result   mockResult
		wantType errors.ErrorType
		wantErr  bool
	}{
		{
			name:   "should pass when a row was affected",
			result: mockResult{rowsAffected: 1},
		},
		{
			name:     "should report not found when no rows were affected",
			result:   mockResult{rowsAffected: 0},
			wantErr:  true,
			wantType: errors.ErrorTypeNotFound,
		},
		{
			name:     "should report a database error when the count is unavailable",
			result:   mockResult{err: fmt.Errorf("driver broke")},
			wantErr:  true,
			wantType: errors.ErrorTypeDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "task", "7")

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, tt.wantType))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandleDatabaseError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := HandleDatabaseError("insert task", cause)

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, cause, appErr.Cause)
}

func TestFormatTimeForDB(t *testing.T) {
	t.Run("should format as RFC3339 in UTC", func(t *testing.T) {
		loc := time.FixedZone("CEST", 2*60*60)
		local := time.Date(2026, 9, 1, 14, 30, 0, 0, loc)

		assert.Equal(t, "2026-09-01T12:30:00Z", FormatTimeForDB(local))
	})

	t.Run("should round-trip through ParseTimeFromDB", func(t *testing.T) {
		original := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
		parsed, err := ParseTimeFromDB(FormatTimeForDB(original))
		require.NoError(t, err)
		assert.True(t, parsed.Equal(original))
	})
}

func TestFormatTimePtrForDB(t *testing.T) {
	t.Run("should return nil for a nil pointer", func(t *testing.T) {
		assert.Nil(t, FormatTimePtrForDB(nil))
	})

	t.Run("should format a non-nil pointer", func(t *testing.T) {
		ts := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "2026-09-01T12:00:00Z", FormatTimePtrForDB(&ts))
	})
}
