package model

import (
	"encoding/json"
	"time"

	"github.com/startbeyond/startbeyond/internal/period"
)

type DailyPlan struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	PlanDate         time.Time `db:"plan_date" json:"plan_date"`
	CategoryCode     string    `db:"category_code" json:"category_code"`
	Subcode          *string   `db:"subcode" json:"subcode,omitempty"`
	DurationMinutes  *int      `db:"duration_minutes" json:"duration_minutes,omitempty"`
	Comment          string    `db:"comment" json:"comment"`
	IsCompleted      bool      `db:"is_completed" json:"is_completed"`
	FromWeeklyTaskID *string   `db:"from_weekly_task_id" json:"from_weekly_task_id,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// MarshalJSON renders plan_date as a plain day, matching the day strings
// the API accepts everywhere else.
func (p DailyPlan) MarshalJSON() ([]byte, error) {
	type alias DailyPlan
	return json.Marshal(struct {
		alias
		PlanDate string `json:"plan_date"`
	}{alias(p), p.PlanDate.Format(period.DayFormat)})
}
