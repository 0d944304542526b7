package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/startbeyond/startbeyond/internal/model"
)

var (
	ErrDailyPlanNotFound = errors.New("daily plan not found")
)

type DailyPlanRepository interface {
	Create(plan *model.DailyPlan) error
	ByID(userID, planID string) (*model.DailyPlan, error)
	ByPeriod(userID string, start, end time.Time) ([]*model.DailyPlan, error)
	Update(plan *model.DailyPlan) error
	Delete(userID, planID string) error
}

type dailyPlanRepository struct {
	db *sqlx.DB
}

func NewDailyPlanRepository(db *sqlx.DB) DailyPlanRepository {
	return &dailyPlanRepository{db: db}
}

func (r *dailyPlanRepository) Create(plan *model.DailyPlan) error {
	query := `INSERT INTO daily_plans (id, user_id, plan_date, category_code, subcode, duration_minutes, comment, is_completed, from_weekly_task_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		plan.ID,
		plan.UserID,
		plan.PlanDate,
		plan.CategoryCode,
		plan.Subcode,
		plan.DurationMinutes,
		plan.Comment,
		plan.IsCompleted,
		plan.FromWeeklyTaskID,
		plan.CreatedAt,
		plan.UpdatedAt,
	)

	return err
}

func (r *dailyPlanRepository) ByID(userID, planID string) (*model.DailyPlan, error) {
	plan := &model.DailyPlan{}
	query := `SELECT * FROM daily_plans WHERE id = $1 AND user_id = $2`

	err := r.db.Get(plan, query, planID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrDailyPlanNotFound
	}

	return plan, err
}

func (r *dailyPlanRepository) ByPeriod(userID string, start, end time.Time) ([]*model.DailyPlan, error) {
	var plans []*model.DailyPlan
	query := `SELECT * FROM daily_plans
	          WHERE user_id = $1 AND plan_date >= $2 AND plan_date <= $3
	          ORDER BY plan_date ASC, created_at ASC`

	err := r.db.Select(&plans, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *dailyPlanRepository) Update(plan *model.DailyPlan) error {
	query := `UPDATE daily_plans
	          SET category_code = $1, subcode = $2, duration_minutes = $3, comment = $4, is_completed = $5, updated_at = $6
	          WHERE id = $7 AND user_id = $8`

	result, err := r.db.Exec(query,
		plan.CategoryCode,
		plan.Subcode,
		plan.DurationMinutes,
		plan.Comment,
		plan.IsCompleted,
		time.Now(),
		plan.ID,
		plan.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDailyPlanNotFound
	}

	return nil
}

// Delete is a no-op when no matching row exists.
func (r *dailyPlanRepository) Delete(userID, planID string) error {
	_, err := r.db.Exec(`DELETE FROM daily_plans WHERE id = $1 AND user_id = $2`, planID, userID)
	return err
}
