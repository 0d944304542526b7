package model

import (
	"encoding/json"
	"time"

	"github.com/startbeyond/startbeyond/internal/period"
)

type DailyRecord struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	RecordDate      time.Time `db:"record_date" json:"record_date"`
	CategoryCode    string    `db:"category_code" json:"category_code"`
	Subcode         *string   `db:"subcode" json:"subcode,omitempty"`
	DurationMinutes *int      `db:"duration_minutes" json:"duration_minutes,omitempty"`
	Comment         string    `db:"comment" json:"comment"`
	IsPublic        bool      `db:"is_public" json:"is_public"`
	LinkedPlanID    *string   `db:"linked_plan_id" json:"linked_plan_id,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

func (r DailyRecord) MarshalJSON() ([]byte, error) {
	type alias DailyRecord
	return json.Marshal(struct {
		alias
		RecordDate string `json:"record_date"`
	}{alias(r), r.RecordDate.Format(period.DayFormat)})
}

// Memo is a free-text note attached to a record. Memos are private and
// cascade-deleted with their record.
type Memo struct {
	ID        string    `db:"id" json:"id"`
	RecordID  string    `db:"record_id" json:"record_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
