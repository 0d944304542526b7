package model

import (
	"encoding/json"
	"testing"
	"time"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestDailyPlanJSONKeys(t *testing.T) {
	taskID := "t1"
	plan := &DailyPlan{
		ID:               "p1",
		UserID:           "u1",
		PlanDate:         time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		CategoryCode:     "reading",
		FromWeeklyTaskID: &taskID,
	}

	got := marshalToMap(t, plan)

	if got["plan_date"] != "2025-03-03" {
		t.Errorf("plan_date = %v, want 2025-03-03", got["plan_date"])
	}
	if got["from_weekly_task_id"] != "t1" {
		t.Errorf("from_weekly_task_id = %v, want t1", got["from_weekly_task_id"])
	}
	for _, key := range []string{"ID", "UserID", "PlanDate", "FromWeeklyTaskID"} {
		if _, ok := got[key]; ok {
			t.Errorf("Go field name %q leaked into JSON", key)
		}
	}
	if _, ok := got["subcode"]; ok {
		t.Error("nil subcode should be omitted")
	}
}

func TestMonthlyGoalJSONMonth(t *testing.T) {
	goal := &MonthlyGoal{
		ID:              "g1",
		UserID:          "u1",
		MonthDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CategoryCode:    "study",
		Title:           "Read two books",
		SuccessCriteria: CriteriaList{{ID: "c1", Text: "book one"}},
	}

	got := marshalToMap(t, goal)

	if got["month"] != "2025-03" {
		t.Errorf("month = %v, want 2025-03", got["month"])
	}
	criteria, ok := got["success_criteria"].([]any)
	if !ok || len(criteria) != 1 {
		t.Fatalf("success_criteria = %v, want one entry", got["success_criteria"])
	}
}

func TestWeeklyTaskJSONDays(t *testing.T) {
	task := &WeeklyTask{
		ID:            "t1",
		UserID:        "u1",
		WeekStartDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		CategoryCode:  "exercise",
		Days:          WeekdaySet{time.Wednesday: true, time.Monday: true, time.Friday: false},
	}

	got := marshalToMap(t, task)

	if got["week_start_date"] != "2025-03-03" {
		t.Errorf("week_start_date = %v, want 2025-03-03", got["week_start_date"])
	}
	days, ok := got["days"].([]any)
	if !ok {
		t.Fatalf("days = %T, want a list", got["days"])
	}
	if len(days) != 2 || days[0] != float64(1) || days[1] != float64(3) {
		t.Errorf("days = %v, want [1 3]", days)
	}
}
