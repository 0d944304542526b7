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
	ErrDailyNoteNotFound = errors.New("daily note not found")
)

type DailyNoteRepository interface {
	ByDate(userID string, date time.Time) (*model.DailyNote, error)
	ByPeriod(userID string, start, end time.Time) ([]*model.DailyNote, error)
	Upsert(note *model.DailyNote) error
	Delete(userID string, date time.Time) error
}

type dailyNoteRepository struct {
	db *sqlx.DB
}

func NewDailyNoteRepository(db *sqlx.DB) DailyNoteRepository {
	return &dailyNoteRepository{db: db}
}

func (r *dailyNoteRepository) ByDate(userID string, date time.Time) (*model.DailyNote, error) {
	note := &model.DailyNote{}
	query := `SELECT * FROM daily_notes WHERE user_id = $1 AND note_date = $2`

	err := r.db.Get(note, query, userID, date)
	if err == sql.ErrNoRows {
		return nil, ErrDailyNoteNotFound
	}

	return note, err
}

func (r *dailyNoteRepository) ByPeriod(userID string, start, end time.Time) ([]*model.DailyNote, error) {
	var notes []*model.DailyNote
	query := `SELECT * FROM daily_notes
	          WHERE user_id = $1 AND note_date >= $2 AND note_date <= $3
	          ORDER BY note_date ASC`

	err := r.db.Select(&notes, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Upsert keeps the one-note-per-day invariant: writing to an existing
// (user, date) replaces the content.
func (r *dailyNoteRepository) Upsert(note *model.DailyNote) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	query := `INSERT INTO daily_notes (id, user_id, note_date, content, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (user_id, note_date) DO UPDATE SET
	            content = excluded.content,
	            updated_at = excluded.updated_at`

	_, err := r.db.Exec(query, note.ID, note.UserID, note.NoteDate, note.Content, note.CreatedAt, note.UpdatedAt)
	return err
}

func (r *dailyNoteRepository) Delete(userID string, date time.Time) error {
	_, err := r.db.Exec(`DELETE FROM daily_notes WHERE user_id = $1 AND note_date = $2`, userID, date)
	return err
}
