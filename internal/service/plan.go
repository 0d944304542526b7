package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/repository"
)

var (
	ErrPlanAlreadyCompleted = errors.New("plan already completed")
)

// PlanService owns daily plans. Completing a plan writes the linked daily
// record that is the authoritative completion signal.
type PlanService struct {
	repo            repository.DailyPlanRepository
	recordRepo      repository.DailyRecordRepository
	taskRepo        repository.WeeklyTaskRepository
	categoryService *CategoryService
}

func NewPlanService(
	repo repository.DailyPlanRepository,
	recordRepo repository.DailyRecordRepository,
	taskRepo repository.WeeklyTaskRepository,
	categoryService *CategoryService,
) *PlanService {
	return &PlanService{
		repo:            repo,
		recordRepo:      recordRepo,
		taskRepo:        taskRepo,
		categoryService: categoryService,
	}
}

func (s *PlanService) Plans(userID string, start, end time.Time) ([]*model.DailyPlan, error) {
	return s.repo.ByPeriod(userID, start, end)
}

func (s *PlanService) ByID(userID, planID string) (*model.DailyPlan, error) {
	return s.repo.ByID(userID, planID)
}

func (s *PlanService) Create(userID string, date time.Time, categoryCode string, subcode *string, durationMinutes *int, comment string, fromWeeklyTaskID *string) (*model.DailyPlan, error) {
	ok, err := s.categoryService.ActiveCode(userID, categoryCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	if fromWeeklyTaskID != nil {
		_, err := s.taskRepo.ByID(userID, *fromWeeklyTaskID)
		if errors.Is(err, repository.ErrWeeklyTaskNotFound) {
			fromWeeklyTaskID = nil
		} else if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	plan := &model.DailyPlan{
		ID:               uuid.New().String(),
		UserID:           userID,
		PlanDate:         period.DayStart(date),
		CategoryCode:     categoryCode,
		Subcode:          subcode,
		DurationMinutes:  durationMinutes,
		Comment:          comment,
		FromWeeklyTaskID: fromWeeklyTaskID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.repo.Create(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily plan: %w", err)
	}

	return plan, nil
}

func (s *PlanService) Update(userID, planID, categoryCode string, subcode *string, durationMinutes *int, comment string) (*model.DailyPlan, error) {
	ok, err := s.categoryService.ActiveCode(userID, categoryCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	plan, err := s.repo.ByID(userID, planID)
	if err != nil {
		return nil, err
	}

	plan.CategoryCode = categoryCode
	plan.Subcode = subcode
	plan.DurationMinutes = durationMinutes
	plan.Comment = comment
	plan.UpdatedAt = time.Now()

	err = s.repo.Update(plan)
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// Complete writes the daily record that fulfills the plan and mirrors the
// completion onto the plan row. The record is the source of truth; the
// mirrored flag only serves plan-page rendering.
func (s *PlanService) Complete(userID, planID string, durationMinutes *int, comment string, isPublic bool) (*model.DailyRecord, error) {
	plan, err := s.repo.ByID(userID, planID)
	if err != nil {
		return nil, err
	}

	if plan.IsCompleted {
		return nil, ErrPlanAlreadyCompleted
	}

	if durationMinutes == nil {
		durationMinutes = plan.DurationMinutes
	}

	now := time.Now()
	record := &model.DailyRecord{
		ID:              uuid.New().String(),
		UserID:          userID,
		RecordDate:      plan.PlanDate,
		CategoryCode:    plan.CategoryCode,
		Subcode:         plan.Subcode,
		DurationMinutes: durationMinutes,
		Comment:         comment,
		IsPublic:        isPublic,
		LinkedPlanID:    &plan.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.recordRepo.Create(record)
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	plan.IsCompleted = true
	plan.UpdatedAt = now
	err = s.repo.Update(plan)
	if err != nil {
		// The record exists, so completion is already derivable; the stale
		// flag heals on the next record write for this plan.
		slog.Warn("failed to mirror completion onto plan", "error", err, "plan_id", plan.ID)
	}

	return record, nil
}

// MaterializeWeek turns the week's scheduled task days into daily plans.
// Days that already have a plan from the same task are skipped, so the
// operation can run repeatedly as tasks change.
func (s *PlanService) MaterializeWeek(userID string, week time.Time) ([]*model.DailyPlan, error) {
	week = period.WeekStart(week)
	weekEnd := period.WeekEnd(week)

	tasks, err := s.taskRepo.ByPeriod(userID, week, week)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ByPeriod(userID, week, weekEnd)
	if err != nil {
		return nil, err
	}

	type key struct {
		taskID string
		day    string
	}
	seen := make(map[key]bool, len(existing))
	for _, plan := range existing {
		if plan.FromWeeklyTaskID != nil {
			seen[key{*plan.FromWeeklyTaskID, plan.PlanDate.Format(period.DayFormat)}] = true
		}
	}

	var created []*model.DailyPlan
	for _, task := range tasks {
		for _, day := range period.Days(week, weekEnd) {
			if !task.Days[day.Weekday()] {
				continue
			}
			if seen[key{task.ID, day.Format(period.DayFormat)}] {
				continue
			}

			now := time.Now()
			plan := &model.DailyPlan{
				ID:               uuid.New().String(),
				UserID:           userID,
				PlanDate:         day,
				CategoryCode:     task.CategoryCode,
				Subcode:          task.Subcode,
				Comment:          task.Comment,
				FromWeeklyTaskID: &task.ID,
				CreatedAt:        now,
				UpdatedAt:        now,
			}

			err = s.repo.Create(plan)
			if err != nil {
				return created, fmt.Errorf("failed to materialize plan for %s: %w", day.Format(period.DayFormat), err)
			}
			created = append(created, plan)
		}
	}

	return created, nil
}

func (s *PlanService) Delete(userID, planID string) error {
	return s.repo.Delete(userID, planID)
}
