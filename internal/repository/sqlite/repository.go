package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"todo-manager/internal/errors"
	"todo-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for task storage operations. Every read and
// mutation is scoped by the owning actor; a task owned by someone else is
// reported as not found, never as forbidden.
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64, owner string) (*Task, error)
	ListTasks(ctx context.Context, opts ListOptions) ([]*Task, error)
	UpdateTask(ctx context.Context, id int64, owner string, update TaskUpdate) (*Task, error)
	DeleteTask(ctx context.Context, id int64, owner string) error
	ToggleTask(ctx context.Context, id int64, owner string) (*Task, error)
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// SQLite allows one writer at a time; a single pooled connection also
	// keeps :memory: databases on one schema.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const taskColumns = `id, user_id, title, description, completed, priority, due_date, category, tags, notification_settings, created_at, updated_at`

// CreateTask inserts a new task row. The identifier is assigned by the
// database (AUTOINCREMENT, so ids are never reused after deletion) and both
// timestamps are set here.
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	now := time.Now().UTC().Truncate(time.Second)

	query := `
	INSERT INTO tasks (user_id, title, description, completed, priority, due_date, category, tags, notification_settings, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.UserID,
		task.Title,
		task.Description,
		task.Completed,
		task.Priority,
		FormatTimePtrForDB(task.DueDate),
		task.Category,
		task.Tags,
		task.NotificationSettings,
		FormatTimeForDB(now),
		FormatTimeForDB(now),
	)
	if err != nil {
		return err
	}

	task.ID = id
	task.CreatedAt = now
	task.UpdatedAt = now
	return nil
}

// GetTask retrieves a task by ID, scoped to its owner
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64, owner string) (*Task, error) {
	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE id = ? AND user_id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id, owner)
}

// ListTasks retrieves tasks for an owner, newest first, with optional
// completion filtering and limit/offset paging.
func (r *SQLiteRepository) ListTasks(ctx context.Context, opts ListOptions) ([]*Task, error) {
	conditions := []string{"user_id = ?"}
	args := []interface{}{opts.Owner}

	if opts.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opts.Completed)
	}

	query := `
	SELECT ` + taskColumns + `
	FROM tasks
	WHERE ` + strings.Join(conditions, " AND ") + `
	ORDER BY created_at DESC, id DESC`

	if opts.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, opts.Limit, opts.Offset)
	}

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
}

// UpdateTask merges the supplied fields into an existing row and refreshes
// updated_at, all inside one transaction so a failed ownership check leaves no
// partial write. Returns the merged row.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, id int64, owner string, update TaskUpdate) (*Task, error) {
	var sets []string
	var args []interface{}

	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}
	if update.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *update.Completed)
	}
	if update.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *update.Priority)
	}
	if update.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, FormatTimePtrForDB(update.DueDate))
	}
	if update.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *update.Category)
	}
	if update.Tags != nil {
		sets = append(sets, "tags = ?")
		args = append(args, *update.Tags)
	}
	if update.NotificationSettings != nil {
		sets = append(sets, "notification_settings = ?")
		args = append(args, *update.NotificationSettings)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, FormatTimeForDB(time.Now().UTC().Truncate(time.Second)))
	args = append(args, id, owner)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ? AND user_id = ?"
	if err := ExecuteWithRowsAffected(ctx, tx, query, "task", fmt.Sprintf("%d", id), args...); err != nil {
		return nil, err
	}

	task, err := QuerySingle(ctx, tx, `
	SELECT `+taskColumns+`
	FROM tasks
	WHERE id = ? AND user_id = ?`, ScanTask, "task", fmt.Sprintf("%d", id), id, owner)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, HandleDatabaseError("commit transaction", err)
	}
	return task, nil
}

// DeleteTask permanently removes a task owned by the given actor
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64, owner string) error {
	query := `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id, owner)
}

// ToggleTask flips the completed flag with a single conditional UPDATE inside
// a transaction, so two concurrent toggles serialize instead of both writing
// the same flipped value.
func (r *SQLiteRepository) ToggleTask(ctx context.Context, id int64, owner string) (*Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	query := `
	UPDATE tasks
	SET completed = NOT completed, updated_at = ?
	WHERE id = ? AND user_id = ?`

	now := FormatTimeForDB(time.Now().UTC().Truncate(time.Second))
	if err := ExecuteWithRowsAffected(ctx, tx, query, "task", fmt.Sprintf("%d", id), now, id, owner); err != nil {
		return nil, err
	}

	task, err := QuerySingle(ctx, tx, `
	SELECT `+taskColumns+`
	FROM tasks
	WHERE id = ? AND user_id = ?`, ScanTask, "task", fmt.Sprintf("%d", id), id, owner)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, HandleDatabaseError("commit transaction", err)
	}
	return task, nil
}
