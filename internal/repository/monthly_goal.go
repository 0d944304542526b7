package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/startbeyond/startbeyond/internal/model"
)

var (
	ErrMonthlyGoalNotFound = errors.New("monthly goal not found")
)

type MonthlyGoalRepository interface {
	Create(goal *model.MonthlyGoal) error
	ByID(userID, goalID string) (*model.MonthlyGoal, error)
	ByPeriod(userID string, start, end time.Time) ([]*model.MonthlyGoal, error)
	Update(goal *model.MonthlyGoal) error
	Delete(userID, goalID string) error
}

type monthlyGoalRepository struct {
	db *sqlx.DB
}

func NewMonthlyGoalRepository(db *sqlx.DB) MonthlyGoalRepository {
	return &monthlyGoalRepository{db: db}
}

func (r *monthlyGoalRepository) Create(goal *model.MonthlyGoal) error {
	query := `INSERT INTO monthly_goals (id, user_id, month_date, category_code, title, description, success_criteria, weekly_breakdown, is_completed, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.MonthDate,
		goal.CategoryCode,
		goal.Title,
		goal.Description,
		goal.SuccessCriteria,
		goal.WeeklyBreakdown,
		goal.IsCompleted,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *monthlyGoalRepository) ByID(userID, goalID string) (*model.MonthlyGoal, error) {
	goal := &model.MonthlyGoal{}
	query := `SELECT * FROM monthly_goals WHERE id = $1 AND user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrMonthlyGoalNotFound
	}

	return goal, err
}

func (r *monthlyGoalRepository) ByPeriod(userID string, start, end time.Time) ([]*model.MonthlyGoal, error) {
	var goals []*model.MonthlyGoal
	query := `SELECT * FROM monthly_goals
	          WHERE user_id = $1 AND month_date >= $2 AND month_date <= $3
	          ORDER BY month_date ASC, created_at ASC`

	err := r.db.Select(&goals, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *monthlyGoalRepository) Update(goal *model.MonthlyGoal) error {
	query := `UPDATE monthly_goals
	          SET category_code = $1, title = $2, description = $3, success_criteria = $4, weekly_breakdown = $5, is_completed = $6, updated_at = $7
	          WHERE id = $8 AND user_id = $9`

	result, err := r.db.Exec(query,
		goal.CategoryCode,
		goal.Title,
		goal.Description,
		goal.SuccessCriteria,
		goal.WeeklyBreakdown,
		goal.IsCompleted,
		time.Now(),
		goal.ID,
		goal.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMonthlyGoalNotFound
	}

	return nil
}

// Delete is a no-op when no matching row exists.
func (r *monthlyGoalRepository) Delete(userID, goalID string) error {
	_, err := r.db.Exec(`DELETE FROM monthly_goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	return err
}
