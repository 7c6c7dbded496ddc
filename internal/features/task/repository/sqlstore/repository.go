package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/coincoast/memesboost-backend/internal/common/apperrors"
	"github.com/coincoast/memesboost-backend/internal/features/task/models"
	"github.com/coincoast/memesboost-backend/internal/features/task/repository"
)

// Repository implements the task contract over SQLite or Postgres.
type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) repository.TaskRepository {
	return &Repository{db: db}
}

const taskColumns = "id, description, link, points, is_active"

func (r *Repository) Create(ctx context.Context, task *models.Task) error {
	query := r.db.Rebind(`
		INSERT INTO tasks (description, link, points, is_active)
		VALUES (?, ?, ?, ?)
		RETURNING id`)

	err := r.db.GetContext(ctx, &task.ID, query,
		task.Description, task.Link, task.Points, task.IsActive)
	if err != nil {
		return apperrors.Storage("create task", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	query := r.db.Rebind("SELECT " + taskColumns + " FROM tasks WHERE id = ?")

	var task models.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("task")
		}
		return nil, apperrors.Storage("get task", err)
	}
	return &task, nil
}

func (r *Repository) ListActive(ctx context.Context) ([]*models.Task, error) {
	query := r.db.Rebind("SELECT " + taskColumns + " FROM tasks WHERE is_active = ? ORDER BY id")

	var tasks []*models.Task
	if err := r.db.SelectContext(ctx, &tasks, query, true); err != nil {
		return nil, apperrors.Storage("list active tasks", err)
	}
	return tasks, nil
}

func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	query := r.db.Rebind("UPDATE tasks SET is_active = ? WHERE id = ?")

	result, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		return apperrors.Storage("toggle task", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("toggle task", err)
	}
	if affected == 0 {
		return apperrors.NotFound("task")
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := r.db.Rebind("DELETE FROM tasks WHERE id = ?")

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Storage("delete task", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete task", err)
	}
	if affected == 0 {
		return apperrors.NotFound("task")
	}
	return nil
}

func (r *Repository) InsertCompletion(ctx context.Context, userID, taskID int64) (bool, error) {
	query := r.db.Rebind(`
		INSERT INTO user_tasks (user_id, task_id)
		VALUES (?, ?)
		ON CONFLICT (user_id, task_id) DO NOTHING`)

	result, err := r.db.ExecContext(ctx, query, userID, taskID)
	if err != nil {
		return false, apperrors.Storage("record completion", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Storage("record completion", err)
	}
	return affected > 0, nil
}

func (r *Repository) CompletedTaskIDs(ctx context.Context, userID int64) ([]int64, error) {
	query := r.db.Rebind("SELECT task_id FROM user_tasks WHERE user_id = ? ORDER BY task_id")

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, apperrors.Storage("list completions", err)
	}
	return ids, nil
}

func (r *Repository) CompletedByUser(ctx context.Context) (map[int64][]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT user_id, task_id FROM user_tasks ORDER BY user_id, task_id")
	if err != nil {
		return nil, apperrors.Storage("list completions", err)
	}
	defer rows.Close()

	completed := make(map[int64][]int64)
	for rows.Next() {
		var userID, taskID int64
		if err := rows.Scan(&userID, &taskID); err != nil {
			return nil, apperrors.Storage("list completions", err)
		}
		completed[userID] = append(completed[userID], taskID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage("list completions", err)
	}
	return completed, nil
}
