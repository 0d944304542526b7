package service

import (
	"errors"
	"testing"
	"time"

	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/repository"
	"github.com/startbeyond/startbeyond/internal/validation"
)

func newTestGoalService() (*GoalService, *fakeGoalRepo) {
	repo := newFakeGoalRepo()
	return NewGoalService(repo, newTestCategoryService()), repo
}

func TestGoalCreate(t *testing.T) {
	svc, _ := newTestGoalService()

	month := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	goal, err := svc.Create("u1", month, "reading", "Read two books", "", []string{"Finish book one", "Finish book two"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if !goal.MonthDate.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("MonthDate = %v, want normalized to the first", goal.MonthDate)
	}
	if len(goal.SuccessCriteria) != 2 {
		t.Fatalf("got %d criteria, want 2", len(goal.SuccessCriteria))
	}
	for _, cr := range goal.SuccessCriteria {
		if cr.ID == "" {
			t.Error("criterion created without an id")
		}
		if cr.Completed {
			t.Error("criterion should start incomplete")
		}
	}
	if goal.IsCompleted {
		t.Error("new goal with open criteria should not be completed")
	}
}

func TestGoalCreateRejectsEmptyTitle(t *testing.T) {
	svc, _ := newTestGoalService()

	_, err := svc.Create("u1", time.Now(), "reading", "", "", nil, nil)
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "title" {
		t.Errorf("err = %v, want a title field error", err)
	}
}

func TestGoalCreateRejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestGoalService()

	_, err := svc.Create("u1", time.Now(), "no_such_code", "Title", "", nil, nil)
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestGoalCreateSkipsBlankCriteria(t *testing.T) {
	svc, _ := newTestGoalService()

	goal, err := svc.Create("u1", time.Now(), "reading", "Title", "", []string{"", "Real one", ""}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(goal.SuccessCriteria) != 1 {
		t.Errorf("got %d criteria, want 1", len(goal.SuccessCriteria))
	}
}

func TestGoalToggleCriterionRecomputesCompletion(t *testing.T) {
	svc, _ := newTestGoalService()

	goal, err := svc.Create("u1", time.Now(), "reading", "Title", "", []string{"one", "two"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	first, second := goal.SuccessCriteria[0].ID, goal.SuccessCriteria[1].ID

	goal, err = svc.ToggleCriterion("u1", goal.ID, first)
	if err != nil {
		t.Fatalf("ToggleCriterion: %v", err)
	}
	if goal.IsCompleted {
		t.Error("goal completed with one criterion still open")
	}

	goal, err = svc.ToggleCriterion("u1", goal.ID, second)
	if err != nil {
		t.Fatalf("ToggleCriterion: %v", err)
	}
	if !goal.IsCompleted {
		t.Error("goal should complete once every criterion is done")
	}

	// Un-toggling reopens the goal.
	goal, err = svc.ToggleCriterion("u1", goal.ID, first)
	if err != nil {
		t.Fatalf("ToggleCriterion: %v", err)
	}
	if goal.IsCompleted {
		t.Error("goal should reopen when a criterion is unchecked")
	}
}

func TestGoalToggleUnknownCriterion(t *testing.T) {
	svc, _ := newTestGoalService()

	goal, err := svc.Create("u1", time.Now(), "reading", "Title", "", []string{"one"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.ToggleCriterion("u1", goal.ID, "nope")
	if !errors.Is(err, ErrCriterionNotFound) {
		t.Errorf("err = %v, want ErrCriterionNotFound", err)
	}
}

func TestGoalUpdateAssignsCriterionIDs(t *testing.T) {
	svc, _ := newTestGoalService()

	goal, err := svc.Create("u1", time.Now(), "reading", "Title", "", []string{"one"}, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	criteria := append(goal.SuccessCriteria, model.Criterion{Text: "added later"})
	goal, err = svc.Update("u1", goal.ID, "reading", "Title", "desc", criteria, model.WeekTextMap{1: "week one"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(goal.SuccessCriteria) != 2 {
		t.Fatalf("got %d criteria, want 2", len(goal.SuccessCriteria))
	}
	if goal.SuccessCriteria[1].ID == "" {
		t.Error("new criterion did not get an id")
	}
}

func TestGoalsByMonthNormalizes(t *testing.T) {
	svc, _ := newTestGoalService()

	_, err := svc.Create("u1", time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), "reading", "March goal", "", nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Any day of the month finds the goal filed under the first.
	goals, err := svc.Goals("u1", time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 1 {
		t.Errorf("got %d goals, want 1", len(goals))
	}

	goals, err = svc.Goals("u1", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Goals: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("got %d goals in april, want 0", len(goals))
	}
}

func TestGoalByIDScopedToUser(t *testing.T) {
	svc, _ := newTestGoalService()

	goal, err := svc.Create("u1", time.Now(), "reading", "Title", "", nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.ByID("someone-else", goal.ID)
	if !errors.Is(err, repository.ErrMonthlyGoalNotFound) {
		t.Errorf("err = %v, want not found for another user", err)
	}
}
