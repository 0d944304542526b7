package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/startbeyond/startbeyond/internal/model"
)

var (
	ErrDailyRecordNotFound = errors.New("daily record not found")
	ErrMemoNotFound        = errors.New("memo not found")
)

type DailyRecordRepository interface {
	Create(record *model.DailyRecord) error
	ByID(userID, recordID string) (*model.DailyRecord, error)
	ByPeriod(userID string, start, end time.Time) ([]*model.DailyRecord, error)
	PublicByDate(date time.Time) ([]*model.DailyRecord, error)
	Update(record *model.DailyRecord) error
	Delete(userID, recordID string) error

	CreateMemo(memo *model.Memo) error
	Memos(recordID string) ([]*model.Memo, error)
	DeleteMemo(recordID, memoID string) error
}

type dailyRecordRepository struct {
	db *sqlx.DB
}

func NewDailyRecordRepository(db *sqlx.DB) DailyRecordRepository {
	return &dailyRecordRepository{db: db}
}

func (r *dailyRecordRepository) Create(record *model.DailyRecord) error {
	query := `INSERT INTO daily_records (id, user_id, record_date, category_code, subcode, duration_minutes, comment, is_public, linked_plan_id, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		record.ID,
		record.UserID,
		record.RecordDate,
		record.CategoryCode,
		record.Subcode,
		record.DurationMinutes,
		record.Comment,
		record.IsPublic,
		record.LinkedPlanID,
		record.CreatedAt,
		record.UpdatedAt,
	)

	return err
}

func (r *dailyRecordRepository) ByID(userID, recordID string) (*model.DailyRecord, error) {
	record := &model.DailyRecord{}
	query := `SELECT * FROM daily_records WHERE id = $1 AND user_id = $2`

	err := r.db.Get(record, query, recordID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrDailyRecordNotFound
	}

	return record, err
}

func (r *dailyRecordRepository) ByPeriod(userID string, start, end time.Time) ([]*model.DailyRecord, error) {
	var records []*model.DailyRecord
	query := `SELECT * FROM daily_records
	          WHERE user_id = $1 AND record_date >= $2 AND record_date <= $3
	          ORDER BY record_date ASC, created_at ASC`

	err := r.db.Select(&records, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// PublicByDate returns every user's public records for one day, for the feed.
func (r *dailyRecordRepository) PublicByDate(date time.Time) ([]*model.DailyRecord, error) {
	var records []*model.DailyRecord
	query := `SELECT * FROM daily_records
	          WHERE record_date = $1 AND is_public = true
	          ORDER BY created_at DESC`

	err := r.db.Select(&records, query, date)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *dailyRecordRepository) Update(record *model.DailyRecord) error {
	query := `UPDATE daily_records
	          SET category_code = $1, subcode = $2, duration_minutes = $3, comment = $4, is_public = $5, linked_plan_id = $6, updated_at = $7
	          WHERE id = $8 AND user_id = $9`

	result, err := r.db.Exec(query,
		record.CategoryCode,
		record.Subcode,
		record.DurationMinutes,
		record.Comment,
		record.IsPublic,
		record.LinkedPlanID,
		time.Now(),
		record.ID,
		record.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDailyRecordNotFound
	}

	return nil
}

// Delete is a no-op when no matching row exists.
// Memos cascade via the record_id foreign key.
func (r *dailyRecordRepository) Delete(userID, recordID string) error {
	_, err := r.db.Exec(`DELETE FROM daily_records WHERE id = $1 AND user_id = $2`, recordID, userID)
	return err
}

func (r *dailyRecordRepository) CreateMemo(memo *model.Memo) error {
	if memo.ID == "" {
		memo.ID = uuid.New().String()
	}
	if memo.CreatedAt.IsZero() {
		memo.CreatedAt = time.Now()
	}

	query := `INSERT INTO memos (id, record_id, content, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, memo.ID, memo.RecordID, memo.Content, memo.CreatedAt)
	return err
}

func (r *dailyRecordRepository) Memos(recordID string) ([]*model.Memo, error) {
	var memos []*model.Memo
	query := `SELECT * FROM memos WHERE record_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&memos, query, recordID)
	if err != nil {
		return nil, err
	}

	return memos, nil
}

func (r *dailyRecordRepository) DeleteMemo(recordID, memoID string) error {
	result, err := r.db.Exec(`DELETE FROM memos WHERE id = $1 AND record_id = $2`, memoID, recordID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMemoNotFound
	}

	return nil
}
