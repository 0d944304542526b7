package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/startbeyond/startbeyond/internal/model"
)

var (
	ErrWeeklyTaskNotFound = errors.New("weekly task not found")
)

type WeeklyTaskRepository interface {
	Create(task *model.WeeklyTask) error
	ByID(userID, taskID string) (*model.WeeklyTask, error)
	ByPeriod(userID string, start, end time.Time) ([]*model.WeeklyTask, error)
	Update(task *model.WeeklyTask) error
	Delete(userID, taskID string) error
}

type weeklyTaskRepository struct {
	db *sqlx.DB
}

func NewWeeklyTaskRepository(db *sqlx.DB) WeeklyTaskRepository {
	return &weeklyTaskRepository{db: db}
}

func (r *weeklyTaskRepository) Create(task *model.WeeklyTask) error {
	query := `INSERT INTO weekly_tasks (id, user_id, week_start_date, category_code, subcode, comment, days, is_locked, from_monthly_goal_id, sort_order, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(query,
		task.ID,
		task.UserID,
		task.WeekStartDate,
		task.CategoryCode,
		task.Subcode,
		task.Comment,
		task.Days,
		task.IsLocked,
		task.FromMonthlyGoalID,
		task.SortOrder,
		task.CreatedAt,
		task.UpdatedAt,
	)

	return err
}

func (r *weeklyTaskRepository) ByID(userID, taskID string) (*model.WeeklyTask, error) {
	task := &model.WeeklyTask{}
	query := `SELECT * FROM weekly_tasks WHERE id = $1 AND user_id = $2`

	err := r.db.Get(task, query, taskID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrWeeklyTaskNotFound
	}

	return task, err
}

func (r *weeklyTaskRepository) ByPeriod(userID string, start, end time.Time) ([]*model.WeeklyTask, error) {
	var tasks []*model.WeeklyTask
	query := `SELECT * FROM weekly_tasks
	          WHERE user_id = $1 AND week_start_date >= $2 AND week_start_date <= $3
	          ORDER BY week_start_date ASC, sort_order ASC, created_at ASC`

	err := r.db.Select(&tasks, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *weeklyTaskRepository) Update(task *model.WeeklyTask) error {
	query := `UPDATE weekly_tasks
	          SET category_code = $1, subcode = $2, comment = $3, days = $4, is_locked = $5, sort_order = $6, updated_at = $7
	          WHERE id = $8 AND user_id = $9`

	result, err := r.db.Exec(query,
		task.CategoryCode,
		task.Subcode,
		task.Comment,
		task.Days,
		task.IsLocked,
		task.SortOrder,
		time.Now(),
		task.ID,
		task.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrWeeklyTaskNotFound
	}

	return nil
}

// Delete is a no-op when no matching row exists. Deleting a task never
// touches the monthly goal it originated from.
func (r *weeklyTaskRepository) Delete(userID, taskID string) error {
	_, err := r.db.Exec(`DELETE FROM weekly_tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	return err
}
