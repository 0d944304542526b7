package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/startbeyond/startbeyond/internal/period"
)

// Criterion is a single success criterion on a monthly goal.
type Criterion struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// CriteriaList is stored as a JSON column.
type CriteriaList []Criterion

func (c CriteriaList) Value() (driver.Value, error) {
	return jsonValue([]Criterion(c))
}

func (c *CriteriaList) Scan(src any) error {
	return scanJSON(src, (*[]Criterion)(c))
}

// AllCompleted reports whether the list is non-empty and every criterion
// is marked complete. This is the single definition of goal completion.
func (c CriteriaList) AllCompleted() bool {
	if len(c) == 0 {
		return false
	}
	for _, cr := range c {
		if !cr.Completed {
			return false
		}
	}
	return true
}

// WeekTextMap maps a 1-based week-of-month index to free text.
// Stored as a JSON column.
type WeekTextMap map[int]string

func (m WeekTextMap) Value() (driver.Value, error) {
	return jsonValue(map[int]string(m))
}

func (m *WeekTextMap) Scan(src any) error {
	return scanJSON(src, (*map[int]string)(m))
}

type MonthlyGoal struct {
	ID              string       `db:"id" json:"id"`
	UserID          string       `db:"user_id" json:"user_id"`
	MonthDate       time.Time    `db:"month_date" json:"month"`
	CategoryCode    string       `db:"category_code" json:"category_code"`
	Title           string       `db:"title" json:"title"`
	Description     string       `db:"description" json:"description"`
	SuccessCriteria CriteriaList `db:"success_criteria" json:"success_criteria"`
	WeeklyBreakdown WeekTextMap  `db:"weekly_breakdown" json:"weekly_breakdown"`
	IsCompleted     bool         `db:"is_completed" json:"is_completed"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updated_at"`
}

// MarshalJSON renders month as the YYYY-MM string months are addressed by.
func (g MonthlyGoal) MarshalJSON() ([]byte, error) {
	type alias MonthlyGoal
	return json.Marshal(struct {
		alias
		MonthDate string `json:"month"`
	}{alias(g), g.MonthDate.Format(period.MonthFormat)})
}
