package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/startbeyond/startbeyond/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func plan(id, code string, date time.Time) *model.DailyPlan {
	return &model.DailyPlan{
		ID:           id,
		UserID:       "u1",
		PlanDate:     date,
		CategoryCode: code,
	}
}

func recordFor(planID string, date time.Time) *model.DailyRecord {
	return &model.DailyRecord{
		ID:           "rec-" + planID,
		UserID:       "u1",
		RecordDate:   date,
		CategoryCode: "exercise",
		LinkedPlanID: &planID,
	}
}

func activeDefaults() []model.ResolvedCategory {
	return MergeCategories(nil, nil)
}

func TestBuildCompletionSummaryRate(t *testing.T) {
	d := day(2025, time.March, 3)
	plans := []*model.DailyPlan{
		plan("p1", "exercise", d),
		plan("p2", "reading", d),
		plan("p3", "study", d),
	}
	records := []*model.DailyRecord{
		recordFor("p1", d),
		recordFor("p2", d),
	}

	sum := BuildCompletionSummary(plans, records, activeDefaults(), d, d)

	if sum.TotalPlans != 3 {
		t.Errorf("TotalPlans = %d, want 3", sum.TotalPlans)
	}
	if sum.CompletedPlans != 2 {
		t.Errorf("CompletedPlans = %d, want 2", sum.CompletedPlans)
	}
	if sum.CompletionRate != 67 {
		t.Errorf("CompletionRate = %d, want 67", sum.CompletionRate)
	}
	if len(sum.Unchecked) != 1 || sum.Unchecked[0].Plan.ID != "p3" {
		t.Errorf("Unchecked = %+v, want p3 only", sum.Unchecked)
	}

	cc := sum.ByCategory["exercise"]
	if cc == nil || cc.Total != 1 || cc.Completed != 1 || cc.Rate != 100 {
		t.Errorf("exercise breakdown = %+v", cc)
	}
	cc = sum.ByCategory["study"]
	if cc == nil || cc.Total != 1 || cc.Completed != 0 || cc.Rate != 0 {
		t.Errorf("study breakdown = %+v", cc)
	}
}

func TestBuildCompletionSummaryEmptyRange(t *testing.T) {
	d := day(2025, time.March, 3)
	sum := BuildCompletionSummary(nil, nil, activeDefaults(), d, d.AddDate(0, 0, 6))

	if sum.TotalPlans != 0 || sum.CompletedPlans != 0 {
		t.Errorf("counts = %d/%d, want 0/0", sum.CompletedPlans, sum.TotalPlans)
	}
	if sum.CompletionRate != 0 {
		t.Errorf("CompletionRate = %d, want 0 when no plans exist", sum.CompletionRate)
	}
	if sum.LongestStreak != 0 || sum.CurrentStreak != 0 {
		t.Errorf("streaks = %d/%d, want 0/0", sum.LongestStreak, sum.CurrentStreak)
	}
}

func TestBuildCompletionSummaryRateBounds(t *testing.T) {
	d := day(2025, time.March, 3)
	for completedCount := 0; completedCount <= 7; completedCount++ {
		var plans []*model.DailyPlan
		var records []*model.DailyRecord
		for i := 0; i < 7; i++ {
			id := fmt.Sprintf("p%d", i)
			plans = append(plans, plan(id, "exercise", d.AddDate(0, 0, i)))
			if i < completedCount {
				records = append(records, recordFor(id, d.AddDate(0, 0, i)))
			}
		}

		sum := BuildCompletionSummary(plans, records, activeDefaults(), d, d.AddDate(0, 0, 6))
		if sum.CompletionRate < 0 || sum.CompletionRate > 100 {
			t.Errorf("rate out of bounds: %d", sum.CompletionRate)
		}
		if sum.CompletedPlans > sum.TotalPlans {
			t.Errorf("completed %d exceeds total %d", sum.CompletedPlans, sum.TotalPlans)
		}
	}
}

func TestStreaks(t *testing.T) {
	start := day(2025, time.March, 3) // Monday
	end := start.AddDate(0, 0, 6)

	// Mon-Wed fully complete, Thu has an incomplete plan, Fri complete,
	// Sat-Sun no plans.
	var plans []*model.DailyPlan
	var records []*model.DailyRecord
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("p%d", i)
		plans = append(plans, plan(id, "exercise", start.AddDate(0, 0, i)))
		records = append(records, recordFor(id, start.AddDate(0, 0, i)))
	}
	plans = append(plans, plan("p-thu", "reading", start.AddDate(0, 0, 3)))
	plans = append(plans, plan("p-fri", "reading", start.AddDate(0, 0, 4)))
	records = append(records, recordFor("p-fri", start.AddDate(0, 0, 4)))

	sum := BuildCompletionSummary(plans, records, activeDefaults(), start, end)

	if sum.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", sum.LongestStreak)
	}
	// The trailing plan-free weekend ends the run without extending it.
	if sum.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0", sum.CurrentStreak)
	}
}

func TestStreaksTrailingRunIsCurrent(t *testing.T) {
	start := day(2025, time.March, 3)
	end := start.AddDate(0, 0, 2)

	var plans []*model.DailyPlan
	var records []*model.DailyRecord
	for i := 0; i < 3; i++ {
		id := fmt.Sprintf("p%d", i)
		plans = append(plans, plan(id, "exercise", start.AddDate(0, 0, i)))
		records = append(records, recordFor(id, start.AddDate(0, 0, i)))
	}

	sum := BuildCompletionSummary(plans, records, activeDefaults(), start, end)

	if sum.LongestStreak != 3 || sum.CurrentStreak != 3 {
		t.Errorf("streaks = %d/%d, want 3/3", sum.LongestStreak, sum.CurrentStreak)
	}
}

func TestStreaksPartialDayResets(t *testing.T) {
	start := day(2025, time.March, 3)
	end := start.AddDate(0, 0, 1)

	// Two plans on day one, only one of them completed.
	plans := []*model.DailyPlan{
		plan("p1", "exercise", start),
		plan("p2", "reading", start),
		plan("p3", "exercise", start.AddDate(0, 0, 1)),
	}
	records := []*model.DailyRecord{
		recordFor("p1", start),
		recordFor("p3", start.AddDate(0, 0, 1)),
	}

	sum := BuildCompletionSummary(plans, records, activeDefaults(), start, end)

	if sum.LongestStreak != 1 {
		t.Errorf("LongestStreak = %d, want 1", sum.LongestStreak)
	}
	if sum.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", sum.CurrentStreak)
	}
}

// Extending the range into empty days can only end an open run; the
// longest streak never decreases.
func TestStreakMonotonicUnderRangeAppend(t *testing.T) {
	start := day(2025, time.March, 3)
	var plans []*model.DailyPlan
	var records []*model.DailyRecord
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("p%d", i)
		plans = append(plans, plan(id, "exercise", start.AddDate(0, 0, i)))
		records = append(records, recordFor(id, start.AddDate(0, 0, i)))
	}

	prev := 0
	for extra := 0; extra < 10; extra++ {
		end := start.AddDate(0, 0, 3+extra)
		sum := BuildCompletionSummary(plans, records, activeDefaults(), start, end)
		if sum.LongestStreak < prev {
			t.Fatalf("longest streak shrank from %d to %d at extra=%d", prev, sum.LongestStreak, extra)
		}
		prev = sum.LongestStreak
	}
	if prev != 4 {
		t.Errorf("final longest streak = %d, want 4", prev)
	}
}

func TestBuildCompletionSummaryStoredFlagIgnored(t *testing.T) {
	d := day(2025, time.March, 3)
	stale := plan("p1", "exercise", d)
	stale.IsCompleted = true // no record backs this up

	sum := BuildCompletionSummary([]*model.DailyPlan{stale}, nil, activeDefaults(), d, d)

	if sum.CompletedPlans != 0 {
		t.Errorf("CompletedPlans = %d, want 0 without a linked record", sum.CompletedPlans)
	}
}

func TestBuildCompletionSummaryUnknownCategory(t *testing.T) {
	d := day(2025, time.March, 3)
	plans := []*model.DailyPlan{plan("p1", "no_such_code", d)}

	sum := BuildCompletionSummary(plans, nil, activeDefaults(), d, d)

	if sum.TotalPlans != 1 {
		t.Errorf("TotalPlans = %d, want 1", sum.TotalPlans)
	}
	if _, ok := sum.ByCategory["no_such_code"]; ok {
		t.Error("unknown code should not get a per-category row")
	}
	if len(sum.Unchecked) != 1 || sum.Unchecked[0].Category != nil {
		t.Errorf("Unchecked = %+v, want the plan with nil category", sum.Unchecked)
	}
}
