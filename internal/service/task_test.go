package service

import (
	"errors"
	"testing"
	"time"

	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/repository"
)

func newTestTaskService() (*TaskService, *fakeGoalRepo, *fakeTaskRepo) {
	goalRepo := newFakeGoalRepo()
	taskRepo := newFakeTaskRepo()
	return NewTaskService(taskRepo, goalRepo, newTestCategoryService()), goalRepo, taskRepo
}

func TestTaskCreateNormalizesWeek(t *testing.T) {
	svc, _, _ := newTestTaskService()

	// A Thursday files the task under its Monday.
	thursday := time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC)
	task, err := svc.Create("u1", thursday, "exercise", nil, "morning run", model.WeekdaySet{time.Monday: true}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !task.WeekStartDate.Equal(monday) {
		t.Errorf("WeekStartDate = %v, want %v", task.WeekStartDate, monday)
	}

	tasks, err := svc.Tasks("u1", thursday.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("Tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("got %d tasks for the week, want 1", len(tasks))
	}
}

func TestTaskCreateRejectsUnknownCategory(t *testing.T) {
	svc, _, _ := newTestTaskService()

	_, err := svc.Create("u1", time.Now(), "no_such_code", nil, "", nil, nil)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestTaskCreateDropsStaleGoalRef(t *testing.T) {
	svc, _, _ := newTestTaskService()

	stale := "gone-goal-id"
	task, err := svc.Create("u1", time.Now(), "exercise", nil, "", nil, &stale)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.FromMonthlyGoalID != nil {
		t.Errorf("FromMonthlyGoalID = %v, want nil for a missing goal", *task.FromMonthlyGoalID)
	}
}

func TestTaskCreateKeepsLiveGoalRef(t *testing.T) {
	svc, goalRepo, _ := newTestTaskService()

	goal := &model.MonthlyGoal{ID: "g1", UserID: "u1", MonthDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)}
	if err := goalRepo.Create(goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	ref := "g1"
	task, err := svc.Create("u1", time.Now(), "exercise", nil, "", nil, &ref)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.FromMonthlyGoalID == nil || *task.FromMonthlyGoalID != "g1" {
		t.Errorf("FromMonthlyGoalID = %v, want g1", task.FromMonthlyGoalID)
	}
}

func TestTaskSortOrderAppends(t *testing.T) {
	svc, _, _ := newTestTaskService()

	week := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	first, err := svc.Create("u1", week, "exercise", nil, "", nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create("u1", week, "reading", nil, "", nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if first.SortOrder != 1 || second.SortOrder != 2 {
		t.Errorf("sort orders = %d, %d, want 1, 2", first.SortOrder, second.SortOrder)
	}
}

func TestTaskToggleDay(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.Create("u1", time.Now(), "exercise", nil, "", nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	task, err = svc.ToggleDay("u1", task.ID, time.Wednesday)
	if err != nil {
		t.Fatalf("ToggleDay: %v", err)
	}
	if !task.Days[time.Wednesday] {
		t.Error("wednesday should be on after the first toggle")
	}

	task, err = svc.ToggleDay("u1", task.ID, time.Wednesday)
	if err != nil {
		t.Fatalf("ToggleDay: %v", err)
	}
	if task.Days[time.Wednesday] {
		t.Error("wednesday should be off after the second toggle")
	}
}

func TestTaskToggleDayLockedRejected(t *testing.T) {
	svc, _, _ := newTestTaskService()

	task, err := svc.Create("u1", time.Now(), "exercise", nil, "", model.WeekdaySet{time.Monday: true}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.SetLocked("u1", task.ID, true); err != nil {
		t.Fatalf("SetLocked: %v", err)
	}

	_, err = svc.ToggleDay("u1", task.ID, time.Monday)
	if !errors.Is(err, ErrTaskLocked) {
		t.Errorf("err = %v, want ErrTaskLocked", err)
	}

	// The schedule is untouched.
	task, err = svc.ByID("u1", task.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if !task.Days[time.Monday] {
		t.Error("locked task's schedule changed")
	}

	// Unlocking allows the toggle again.
	if _, err := svc.SetLocked("u1", task.ID, false); err != nil {
		t.Fatalf("SetLocked: %v", err)
	}
	if _, err := svc.ToggleDay("u1", task.ID, time.Monday); err != nil {
		t.Errorf("ToggleDay after unlock: %v", err)
	}
}

func TestTaskDeleteLeavesGoal(t *testing.T) {
	svc, goalRepo, _ := newTestTaskService()

	goal := &model.MonthlyGoal{ID: "g1", UserID: "u1", MonthDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)}
	if err := goalRepo.Create(goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	ref := "g1"
	task, err := svc.Create("u1", time.Now(), "exercise", nil, "", nil, &ref)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete("u1", task.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := goalRepo.ByID("u1", "g1"); err != nil {
		t.Errorf("goal should survive task deletion: %v", err)
	}
	if _, err := svc.ByID("u1", task.ID); !errors.Is(err, repository.ErrWeeklyTaskNotFound) {
		t.Errorf("err = %v, want task gone", err)
	}
}
