package service

import (
	"math"
	"time"

	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/repository"
)

// CategoryCompletion is the per-category completion breakdown.
type CategoryCompletion struct {
	Code      string `json:"code"`
	Label     string `json:"label"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Rate      int    `json:"rate"`
}

// UncheckedPlan pairs a plan with no completed record with its resolved
// category for display.
type UncheckedPlan struct {
	Plan     *model.DailyPlan        `json:"plan"`
	Category *model.ResolvedCategory `json:"category,omitempty"`
}

type CompletionSummary struct {
	TotalPlans     int                            `json:"total_plans"`
	CompletedPlans int                            `json:"completed_plans"`
	CompletionRate int                            `json:"completion_rate"`
	ByCategory     map[string]*CategoryCompletion `json:"by_category"`
	LongestStreak  int                            `json:"longest_streak"`
	CurrentStreak  int                            `json:"current_streak"`
	Unchecked      []UncheckedPlan                `json:"unchecked"`
}

// BuildCompletionSummary derives completion and streak numbers from the raw
// plan and record rows of one user within [start, end].
//
// A plan counts as completed iff some record's linked_plan_id points at it;
// the stored is_completed flag on the plan row is ignored here so the
// summary cannot drift from the records that back it.
func BuildCompletionSummary(
	plans []*model.DailyPlan,
	records []*model.DailyRecord,
	categories []model.ResolvedCategory,
	start, end time.Time,
) *CompletionSummary {
	completed := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.LinkedPlanID != nil && *rec.LinkedPlanID != "" {
			completed[*rec.LinkedPlanID] = true
		}
	}

	byCode := make(map[string]*model.ResolvedCategory, len(categories))
	for i := range categories {
		byCode[categories[i].Code] = &categories[i]
	}

	summary := &CompletionSummary{
		TotalPlans: len(plans),
		ByCategory: make(map[string]*CategoryCompletion),
	}

	for _, plan := range plans {
		done := completed[plan.ID]
		if done {
			summary.CompletedPlans++
		} else {
			summary.Unchecked = append(summary.Unchecked, UncheckedPlan{
				Plan:     plan,
				Category: byCode[plan.CategoryCode],
			})
		}

		// Per-category breakdown covers active categories only.
		cat, ok := byCode[plan.CategoryCode]
		if !ok {
			continue
		}
		cc := summary.ByCategory[cat.Code]
		if cc == nil {
			cc = &CategoryCompletion{Code: cat.Code, Label: cat.Label}
			summary.ByCategory[cat.Code] = cc
		}
		cc.Total++
		if done {
			cc.Completed++
		}
	}

	summary.CompletionRate = rate(summary.CompletedPlans, summary.TotalPlans)
	for _, cc := range summary.ByCategory {
		cc.Rate = rate(cc.Completed, cc.Total)
	}

	summary.LongestStreak, summary.CurrentStreak = streaks(plans, completed, start, end)

	return summary
}

// streaks scans each calendar day of the range in ascending order. A day
// extends the running streak iff it has at least one plan and every plan
// that day is completed; a day with an incomplete plan resets the run, and
// a day with no plans ends the run without starting a new one. The trailing
// open run counts toward the maximum.
func streaks(plans []*model.DailyPlan, completed map[string]bool, start, end time.Time) (longest, current int) {
	type dayState struct {
		total int
		done  int
	}

	byDay := make(map[string]*dayState)
	for _, plan := range plans {
		key := plan.PlanDate.Format(period.DayFormat)
		st := byDay[key]
		if st == nil {
			st = &dayState{}
			byDay[key] = st
		}
		st.total++
		if completed[plan.ID] {
			st.done++
		}
	}

	run := 0
	for _, day := range period.Days(start, end) {
		st := byDay[day.Format(period.DayFormat)]
		if st != nil && st.total > 0 && st.done == st.total {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	current = run

	return longest, current
}

// rate returns completed/total as a percentage rounded to the nearest
// integer, 0 when total is 0.
func rate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// CompletionService fetches a user's rows for a range and derives the
// completion summary from them.
type CompletionService struct {
	planRepo        repository.DailyPlanRepository
	recordRepo      repository.DailyRecordRepository
	categoryService *CategoryService
}

func NewCompletionService(
	planRepo repository.DailyPlanRepository,
	recordRepo repository.DailyRecordRepository,
	categoryService *CategoryService,
) *CompletionService {
	return &CompletionService{
		planRepo:        planRepo,
		recordRepo:      recordRepo,
		categoryService: categoryService,
	}
}

func (s *CompletionService) Summary(userID string, start, end time.Time) (*CompletionSummary, error) {
	plans, err := s.planRepo.ByPeriod(userID, start, end)
	if err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ByPeriod(userID, start, end)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryService.Active(userID)
	if err != nil {
		return nil, err
	}

	return BuildCompletionSummary(plans, records, categories, start, end), nil
}
