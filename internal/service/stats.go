package service

import (
	"math"
	"sort"
	"time"

	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/repository"
)

// SubcodeStat groups records sharing a non-empty subcode within a category.
type SubcodeStat struct {
	Subcode  string `json:"subcode"`
	Count    int    `json:"count"`
	Duration int    `json:"duration"`
}

// CategorySummary is the tabular per-category aggregate for a date range.
type CategorySummary struct {
	Code            string        `json:"code"`
	Label           string        `json:"label"`
	Icon            string        `json:"icon"`
	Color           *string       `json:"color,omitempty"`
	TotalDuration   int           `json:"total_duration"`
	TotalRecords    int           `json:"total_records"`
	AverageDuration int           `json:"average_duration"`
	Subcodes        []SubcodeStat `json:"subcodes"`
}

// ChartSlice is one category's share of the total tracked duration.
type ChartSlice struct {
	Code       string  `json:"code"`
	Label      string  `json:"label"`
	Color      *string `json:"color,omitempty"`
	Duration   int     `json:"duration"`
	Percentage int     `json:"percentage"`
}

type statBucket struct {
	duration int
	count    int
	subcodes map[string]*SubcodeStat
}

// Aggregate groups records per category. Every active category appears in
// the result even with zero records; codes seen in records but absent from
// the active list are appended after them so no tracked minutes are lost.
func Aggregate(records []*model.DailyRecord, categories []model.ResolvedCategory) []CategorySummary {
	buckets := make(map[string]*statBucket)
	var extraCodes []string // record codes outside the active category list, first-seen order

	for _, rec := range records {
		b := buckets[rec.CategoryCode]
		if b == nil {
			b = &statBucket{subcodes: make(map[string]*SubcodeStat)}
			buckets[rec.CategoryCode] = b
		}
		b.count++
		if rec.DurationMinutes != nil {
			b.duration += *rec.DurationMinutes
		}
		if rec.Subcode != nil && *rec.Subcode != "" {
			sc := b.subcodes[*rec.Subcode]
			if sc == nil {
				sc = &SubcodeStat{Subcode: *rec.Subcode}
				b.subcodes[*rec.Subcode] = sc
			}
			sc.Count++
			if rec.DurationMinutes != nil {
				sc.Duration += *rec.DurationMinutes
			}
		}
	}

	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat.Code] = true
	}
	for _, rec := range records {
		if !known[rec.CategoryCode] {
			known[rec.CategoryCode] = true
			extraCodes = append(extraCodes, rec.CategoryCode)
		}
	}

	summaries := make([]CategorySummary, 0, len(categories)+len(extraCodes))
	for _, cat := range categories {
		summaries = append(summaries, buildSummary(cat.Code, cat.Label, cat.Icon, cat.Color, buckets[cat.Code]))
	}
	for _, code := range extraCodes {
		summaries = append(summaries, buildSummary(code, code, "", nil, buckets[code]))
	}

	return summaries
}

func buildSummary(code, label, icon string, color *string, b *statBucket) CategorySummary {
	s := CategorySummary{Code: code, Label: label, Icon: icon, Color: color}
	if b == nil {
		return s
	}

	s.TotalDuration = b.duration
	s.TotalRecords = b.count
	if b.count > 0 {
		s.AverageDuration = b.duration / b.count
	}

	for _, sc := range b.subcodes {
		s.Subcodes = append(s.Subcodes, *sc)
	}
	sort.SliceStable(s.Subcodes, func(i, j int) bool {
		if s.Subcodes[i].Count != s.Subcodes[j].Count {
			return s.Subcodes[i].Count > s.Subcodes[j].Count
		}
		return s.Subcodes[i].Subcode < s.Subcodes[j].Subcode
	})

	return s
}

// ChartData turns summaries into a percentage distribution over the grand
// total duration. Categories with zero duration are left out of charts but
// keep their row in the tabular summaries.
func ChartData(summaries []CategorySummary) []ChartSlice {
	grandTotal := 0
	for _, s := range summaries {
		grandTotal += s.TotalDuration
	}
	if grandTotal == 0 {
		return nil
	}

	var slices []ChartSlice
	for _, s := range summaries {
		if s.TotalDuration == 0 {
			continue
		}
		slices = append(slices, ChartSlice{
			Code:       s.Code,
			Label:      s.Label,
			Color:      s.Color,
			Duration:   s.TotalDuration,
			Percentage: int(math.Round(100 * float64(s.TotalDuration) / float64(grandTotal))),
		})
	}

	return slices
}

// StatsService fetches records for a range and aggregates them.
type StatsService struct {
	recordRepo      repository.DailyRecordRepository
	categoryService *CategoryService
}

func NewStatsService(recordRepo repository.DailyRecordRepository, categoryService *CategoryService) *StatsService {
	return &StatsService{
		recordRepo:      recordRepo,
		categoryService: categoryService,
	}
}

type Stats struct {
	Summaries []CategorySummary `json:"summaries"`
	Chart     []ChartSlice      `json:"chart"`
}

func (s *StatsService) Stats(userID string, start, end time.Time) (*Stats, error) {
	records, err := s.recordRepo.ByPeriod(userID, start, end)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryService.Active(userID)
	if err != nil {
		return nil, err
	}

	summaries := Aggregate(records, categories)
	return &Stats{
		Summaries: summaries,
		Chart:     ChartData(summaries),
	}, nil
}
