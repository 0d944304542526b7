package model

import (
	"encoding/json"
	"time"

	"github.com/startbeyond/startbeyond/internal/period"
)

// DailyNote is the single free-text note a user keeps per day,
// independent of any record.
type DailyNote struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	NoteDate  time.Time `db:"note_date" json:"note_date"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (n DailyNote) MarshalJSON() ([]byte, error) {
	type alias DailyNote
	return json.Marshal(struct {
		alias
		NoteDate string `json:"note_date"`
	}{alias(n), n.NoteDate.Format(period.DayFormat)})
}
