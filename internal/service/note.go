package service

import (
	"errors"
	"time"

	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/repository"
)

// NoteService owns the one-per-day free-text notes.
type NoteService struct {
	repo repository.DailyNoteRepository
}

func NewNoteService(repo repository.DailyNoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// Note returns the note for a day, or nil when none exists.
func (s *NoteService) Note(userID string, date time.Time) (*model.DailyNote, error) {
	note, err := s.repo.ByDate(userID, period.DayStart(date))
	if errors.Is(err, repository.ErrDailyNoteNotFound) {
		return nil, nil
	}
	return note, err
}

// SetNote writes the day's note; an empty content deletes it.
func (s *NoteService) SetNote(userID string, date time.Time, content string) (*model.DailyNote, error) {
	date = period.DayStart(date)

	if content == "" {
		err := s.repo.Delete(userID, date)
		return nil, err
	}

	note := &model.DailyNote{
		UserID:   userID,
		NoteDate: date,
		Content:  content,
	}

	err := s.repo.Upsert(note)
	if err != nil {
		return nil, err
	}

	return s.repo.ByDate(userID, date)
}
