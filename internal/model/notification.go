package model

import (
	"database/sql/driver"
	"time"
)

const (
	NotificationKindWeeklySummary = "weekly_summary"
)

// NotificationPayload carries kind-specific data as a JSON column.
type NotificationPayload map[string]any

func (p NotificationPayload) Value() (driver.Value, error) {
	return jsonValue(map[string]any(p))
}

func (p *NotificationPayload) Scan(src any) error {
	return scanJSON(src, (*map[string]any)(p))
}

type Notification struct {
	ID        string              `db:"id" json:"id"`
	UserID    string              `db:"user_id" json:"user_id"`
	Kind      string              `db:"kind" json:"kind"`
	Payload   NotificationPayload `db:"payload" json:"payload"`
	CreatedAt time.Time           `db:"created_at" json:"created_at"`
	ReadAt    *time.Time          `db:"read_at" json:"read_at,omitempty"`
}
