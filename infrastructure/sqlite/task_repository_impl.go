package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"taskmanager-api/domain/models"
	"taskmanager-api/domain/repositories"
)

const dateLayout = "2006-01-02"

const taskColumns = `id, title, description, status, due_date, user_id, created_at, updated_at`

type TaskRepositoryImpl struct {
	db *sql.DB
}

func NewTaskRepository(store *Store) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: store.DB()}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		task                 models.Task
		description, dueDate sql.NullString
		createdAt, updatedAt int64
	)
	if err := row.Scan(&task.ID, &task.Title, &description, &task.Status, &dueDate, &task.UserID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if description.Valid {
		d := description.String
		task.Description = &d
	}
	if dueDate.Valid {
		due, err := time.Parse(dateLayout, dueDate.String)
		if err != nil {
			return nil, fmt.Errorf("parse due_date %q: %w", dueDate.String, err)
		}
		task.DueDate = &due
	}
	task.CreatedAt = fromMillis(createdAt)
	task.UpdatedAt = fromMillis(updatedAt)
	return &task, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullableDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(dateLayout), Valid: true}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, due_date, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.Title, nullableString(task.Description), task.Status, nullableDate(task.DueDate),
		task.UserID, toMillis(now), toMillis(now),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	task.ID = uint(id)
	return nil
}

func (r *TaskRepositoryImpl) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY id ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id, ownerID uint) (*models.Task, error) {
	return getOwned(ctx, r.db, id, ownerID)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getOwned(ctx context.Context, q queryRower, id, ownerID uint) (*models.Task, error) {
	task, err := scanTask(q.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

func (r *TaskRepositoryImpl) Replace(ctx context.Context, id, ownerID uint, fields models.TaskFields) (*models.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, status = ?, due_date = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		fields.Title, nullableString(fields.Description), fields.Status, nullableDate(fields.DueDate),
		toMillis(time.Now()), id, ownerID,
	)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, repositories.ErrNotFound
	}

	task, err := getOwned(ctx, tx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, ownerID uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
