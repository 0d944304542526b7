package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/repository"
)

var (
	ErrTaskLocked = errors.New("task is locked")
)

// TaskService owns weekly tasks. A task schedules a category across the
// days of one week; locked tasks refuse day changes.
type TaskService struct {
	repo            repository.WeeklyTaskRepository
	goalRepo        repository.MonthlyGoalRepository
	categoryService *CategoryService
}

func NewTaskService(
	repo repository.WeeklyTaskRepository,
	goalRepo repository.MonthlyGoalRepository,
	categoryService *CategoryService,
) *TaskService {
	return &TaskService{
		repo:            repo,
		goalRepo:        goalRepo,
		categoryService: categoryService,
	}
}

func (s *TaskService) Tasks(userID string, week time.Time) ([]*model.WeeklyTask, error) {
	week = period.WeekStart(week)
	return s.repo.ByPeriod(userID, week, week)
}

func (s *TaskService) ByID(userID, taskID string) (*model.WeeklyTask, error) {
	return s.repo.ByID(userID, taskID)
}

func (s *TaskService) ByPeriod(userID string, start, end time.Time) ([]*model.WeeklyTask, error) {
	return s.repo.ByPeriod(userID, start, end)
}

func (s *TaskService) Create(userID string, week time.Time, categoryCode string, subcode *string, comment string, days model.WeekdaySet, fromMonthlyGoalID *string) (*model.WeeklyTask, error) {
	ok, err := s.categoryService.ActiveCode(userID, categoryCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	// A stale goal back-reference is dropped rather than rejected.
	if fromMonthlyGoalID != nil {
		_, err := s.goalRepo.ByID(userID, *fromMonthlyGoalID)
		if errors.Is(err, repository.ErrMonthlyGoalNotFound) {
			fromMonthlyGoalID = nil
		} else if err != nil {
			return nil, err
		}
	}

	week = period.WeekStart(week)

	existing, err := s.repo.ByPeriod(userID, week, week)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	task := &model.WeeklyTask{
		ID:                uuid.New().String(),
		UserID:            userID,
		WeekStartDate:     week,
		CategoryCode:      categoryCode,
		Subcode:           subcode,
		Comment:           comment,
		Days:              days,
		FromMonthlyGoalID: fromMonthlyGoalID,
		SortOrder:         len(existing) + 1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if task.Days == nil {
		task.Days = model.WeekdaySet{}
	}

	err = s.repo.Create(task)
	if err != nil {
		return nil, fmt.Errorf("failed to create weekly task: %w", err)
	}

	return task, nil
}

func (s *TaskService) Update(userID, taskID, categoryCode string, subcode *string, comment string, sortOrder int) (*model.WeeklyTask, error) {
	ok, err := s.categoryService.ActiveCode(userID, categoryCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	task, err := s.repo.ByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.CategoryCode = categoryCode
	task.Subcode = subcode
	task.Comment = comment
	task.SortOrder = sortOrder
	task.UpdatedAt = time.Now()

	err = s.repo.Update(task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ToggleDay flips one scheduled weekday. Locked tasks reject the change.
func (s *TaskService) ToggleDay(userID, taskID string, day time.Weekday) (*model.WeeklyTask, error) {
	task, err := s.repo.ByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if task.IsLocked {
		return nil, ErrTaskLocked
	}

	if task.Days == nil {
		task.Days = model.WeekdaySet{}
	}
	task.Days[day] = !task.Days[day]
	task.UpdatedAt = time.Now()

	err = s.repo.Update(task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) SetLocked(userID, taskID string, locked bool) (*model.WeeklyTask, error) {
	task, err := s.repo.ByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.IsLocked = locked
	task.UpdatedAt = time.Now()

	err = s.repo.Update(task)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes a task. The monthly goal it originated from is untouched.
func (s *TaskService) Delete(userID, taskID string) error {
	return s.repo.Delete(userID, taskID)
}
