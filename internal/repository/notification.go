package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/startbeyond/startbeyond/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	ByUser(userID string, limit int) ([]*model.Notification, error)
	MarkRead(userID, notificationID string) error
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	query := `INSERT INTO notifications (id, user_id, kind, payload, created_at, read_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		notification.ID,
		notification.UserID,
		notification.Kind,
		notification.Payload,
		notification.CreatedAt,
		notification.ReadAt,
	)

	return err
}

func (r *notificationRepository) ByUser(userID string, limit int) ([]*model.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	var notifications []*model.Notification
	query := `SELECT * FROM notifications WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	err := r.db.Select(&notifications, query, userID, limit)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *notificationRepository) MarkRead(userID, notificationID string) error {
	result, err := r.db.Exec(`UPDATE notifications SET read_at = $1 WHERE id = $2 AND user_id = $3`,
		time.Now(), notificationID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
