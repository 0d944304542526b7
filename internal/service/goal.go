package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/repository"
	"github.com/startbeyond/startbeyond/internal/validation"
)

var (
	ErrCriterionNotFound = errors.New("success criterion not found")
	ErrUnknownCategory   = errors.New("unknown or inactive category code")
)

// GoalService owns monthly goals and their success criteria. The
// is_completed flag is recomputed from the criteria list on every write
// that can change it, never edited directly.
type GoalService struct {
	repo            repository.MonthlyGoalRepository
	categoryService *CategoryService
}

func NewGoalService(repo repository.MonthlyGoalRepository, categoryService *CategoryService) *GoalService {
	return &GoalService{
		repo:            repo,
		categoryService: categoryService,
	}
}

func (s *GoalService) Goals(userID string, month time.Time) ([]*model.MonthlyGoal, error) {
	month = period.MonthStart(month)
	return s.repo.ByPeriod(userID, month, month)
}

func (s *GoalService) ByID(userID, goalID string) (*model.MonthlyGoal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) ByPeriod(userID string, start, end time.Time) ([]*model.MonthlyGoal, error) {
	return s.repo.ByPeriod(userID, start, end)
}

func (s *GoalService) Create(userID string, month time.Time, categoryCode, title, description string, criteria []string, breakdown model.WeekTextMap) (*model.MonthlyGoal, error) {
	if title == "" {
		return nil, validation.Error("title", "title is required")
	}

	err := s.checkCategory(userID, categoryCode)
	if err != nil {
		return nil, err
	}

	list := make(model.CriteriaList, 0, len(criteria))
	for _, text := range criteria {
		if text == "" {
			continue
		}
		list = append(list, model.Criterion{
			ID:   uuid.New().String(),
			Text: text,
		})
	}

	now := time.Now()
	goal := &model.MonthlyGoal{
		ID:              uuid.New().String(),
		UserID:          userID,
		MonthDate:       period.MonthStart(month),
		CategoryCode:    categoryCode,
		Title:           title,
		Description:     description,
		SuccessCriteria: list,
		WeeklyBreakdown: breakdown,
		IsCompleted:     list.AllCompleted(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create monthly goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Update(userID, goalID, categoryCode, title, description string, criteria model.CriteriaList, breakdown model.WeekTextMap) (*model.MonthlyGoal, error) {
	if title == "" {
		return nil, validation.Error("title", "title is required")
	}

	err := s.checkCategory(userID, categoryCode)
	if err != nil {
		return nil, err
	}

	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	for i := range criteria {
		if criteria[i].ID == "" {
			criteria[i].ID = uuid.New().String()
		}
	}

	goal.CategoryCode = categoryCode
	goal.Title = title
	goal.Description = description
	goal.SuccessCriteria = criteria
	goal.WeeklyBreakdown = breakdown
	goal.IsCompleted = criteria.AllCompleted()
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// ToggleCriterion flips one success criterion and recomputes the goal's
// completion from the full list.
func (s *GoalService) ToggleCriterion(userID, goalID, criterionID string) (*model.MonthlyGoal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range goal.SuccessCriteria {
		if goal.SuccessCriteria[i].ID == criterionID {
			goal.SuccessCriteria[i].Completed = !goal.SuccessCriteria[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, ErrCriterionNotFound
	}

	goal.IsCompleted = goal.SuccessCriteria.AllCompleted()
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}

func (s *GoalService) checkCategory(userID, code string) error {
	ok, err := s.categoryService.ActiveCode(userID, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownCategory
	}
	return nil
}
