package model

import (
	"database/sql/driver"
	"encoding/json"
	"sort"
	"time"

	"github.com/startbeyond/startbeyond/internal/period"
)

// WeekdaySet marks which weekdays a task is scheduled on.
// Keys are time.Weekday values (0 = Sunday). Stored as a JSON column.
type WeekdaySet map[time.Weekday]bool

func (s WeekdaySet) Value() (driver.Value, error) {
	return jsonValue(map[time.Weekday]bool(s))
}

func (s *WeekdaySet) Scan(src any) error {
	return scanJSON(src, (*map[time.Weekday]bool)(s))
}

// MarshalJSON emits the scheduled weekdays as a sorted list, the same
// shape requests use. The storage format is unaffected: Value and Scan
// work on the raw map.
func (s WeekdaySet) MarshalJSON() ([]byte, error) {
	days := make([]int, 0, len(s))
	for day, on := range s {
		if on {
			days = append(days, int(day))
		}
	}
	sort.Ints(days)
	return json.Marshal(days)
}

type WeeklyTask struct {
	ID                string     `db:"id" json:"id"`
	UserID            string     `db:"user_id" json:"user_id"`
	WeekStartDate     time.Time  `db:"week_start_date" json:"week_start_date"`
	CategoryCode      string     `db:"category_code" json:"category_code"`
	Subcode           *string    `db:"subcode" json:"subcode,omitempty"`
	Comment           string     `db:"comment" json:"comment"`
	Days              WeekdaySet `db:"days" json:"days"`
	IsLocked          bool       `db:"is_locked" json:"is_locked"`
	FromMonthlyGoalID *string    `db:"from_monthly_goal_id" json:"from_monthly_goal_id,omitempty"`
	SortOrder         int        `db:"sort_order" json:"sort_order"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// MarshalJSON renders week_start_date as the Monday day string weeks are
// addressed by.
func (t WeeklyTask) MarshalJSON() ([]byte, error) {
	type alias WeeklyTask
	return json.Marshal(struct {
		alias
		WeekStartDate string `json:"week_start_date"`
	}{alias(t), t.WeekStartDate.Format(period.DayFormat)})
}
