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
	"github.com/startbeyond/startbeyond/internal/validation"
)

// RecordService owns daily records, their memos, and the public feed.
type RecordService struct {
	repo            repository.DailyRecordRepository
	planRepo        repository.DailyPlanRepository
	profileRepo     repository.ProfileRepository
	categoryService *CategoryService
}

func NewRecordService(
	repo repository.DailyRecordRepository,
	planRepo repository.DailyPlanRepository,
	profileRepo repository.ProfileRepository,
	categoryService *CategoryService,
) *RecordService {
	return &RecordService{
		repo:            repo,
		planRepo:        planRepo,
		profileRepo:     profileRepo,
		categoryService: categoryService,
	}
}

func (s *RecordService) Records(userID string, start, end time.Time) ([]*model.DailyRecord, error) {
	return s.repo.ByPeriod(userID, start, end)
}

func (s *RecordService) ByID(userID, recordID string) (*model.DailyRecord, error) {
	return s.repo.ByID(userID, recordID)
}

func (s *RecordService) Create(userID string, date time.Time, categoryCode string, subcode *string, durationMinutes *int, comment string, isPublic bool, linkedPlanID *string) (*model.DailyRecord, error) {
	ok, err := s.categoryService.ActiveCode(userID, categoryCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	// A linked plan must exist and belong to the caller; linking marks it
	// completed.
	var linkedPlan *model.DailyPlan
	if linkedPlanID != nil && *linkedPlanID != "" {
		linkedPlan, err = s.planRepo.ByID(userID, *linkedPlanID)
		if err != nil {
			return nil, err
		}
	} else {
		linkedPlanID = nil
	}

	now := time.Now()
	record := &model.DailyRecord{
		ID:              uuid.New().String(),
		UserID:          userID,
		RecordDate:      period.DayStart(date),
		CategoryCode:    categoryCode,
		Subcode:         subcode,
		DurationMinutes: durationMinutes,
		Comment:         comment,
		IsPublic:        isPublic,
		LinkedPlanID:    linkedPlanID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = s.repo.Create(record)
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	if linkedPlan != nil && !linkedPlan.IsCompleted {
		linkedPlan.IsCompleted = true
		linkedPlan.UpdatedAt = now
		err = s.planRepo.Update(linkedPlan)
		if err != nil {
			slog.Warn("failed to mirror completion onto plan", "error", err, "plan_id", linkedPlan.ID)
		}
	}

	return record, nil
}

func (s *RecordService) Update(userID, recordID, categoryCode string, subcode *string, durationMinutes *int, comment string, isPublic bool) (*model.DailyRecord, error) {
	ok, err := s.categoryService.ActiveCode(userID, categoryCode)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownCategory
	}

	record, err := s.repo.ByID(userID, recordID)
	if err != nil {
		return nil, err
	}

	record.CategoryCode = categoryCode
	record.Subcode = subcode
	record.DurationMinutes = durationMinutes
	record.Comment = comment
	record.IsPublic = isPublic
	record.UpdatedAt = time.Now()

	err = s.repo.Update(record)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes a record and its memos. When the record fulfilled a plan,
// the plan's mirrored completion flag is cleared again.
func (s *RecordService) Delete(userID, recordID string) error {
	record, err := s.repo.ByID(userID, recordID)
	if errors.Is(err, repository.ErrDailyRecordNotFound) {
		return nil // delete is a no-op on absent rows
	}
	if err != nil {
		return err
	}

	err = s.repo.Delete(userID, recordID)
	if err != nil {
		return err
	}

	if record.LinkedPlanID != nil {
		plan, err := s.planRepo.ByID(userID, *record.LinkedPlanID)
		if err == nil && plan.IsCompleted {
			plan.IsCompleted = false
			plan.UpdatedAt = time.Now()
			err = s.planRepo.Update(plan)
		}
		if err != nil && !errors.Is(err, repository.ErrDailyPlanNotFound) {
			slog.Warn("failed to clear completion on plan", "error", err, "plan_id", *record.LinkedPlanID)
		}
	}

	return nil
}

func (s *RecordService) Memos(userID, recordID string) ([]*model.Memo, error) {
	_, err := s.repo.ByID(userID, recordID) // ownership check
	if err != nil {
		return nil, err
	}

	return s.repo.Memos(recordID)
}

func (s *RecordService) AddMemo(userID, recordID, content string) (*model.Memo, error) {
	if content == "" {
		return nil, validation.Error("content", "memo content is required")
	}

	_, err := s.repo.ByID(userID, recordID)
	if err != nil {
		return nil, err
	}

	memo := &model.Memo{
		ID:        uuid.New().String(),
		RecordID:  recordID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	err = s.repo.CreateMemo(memo)
	if err != nil {
		return nil, fmt.Errorf("failed to create memo: %w", err)
	}

	return memo, nil
}

func (s *RecordService) DeleteMemo(userID, recordID, memoID string) error {
	_, err := s.repo.ByID(userID, recordID)
	if err != nil {
		return err
	}

	return s.repo.DeleteMemo(recordID, memoID)
}

// FeedItem is one public record in the community feed, with the author's
// display name resolved. Memos stay private and are never included.
type FeedItem struct {
	RecordID        string  `json:"record_id"`
	AuthorName      string  `json:"author_name"`
	CategoryCode    string  `json:"category_code"`
	Subcode         *string `json:"subcode,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Comment         string  `json:"comment"`
	Date            string  `json:"date"`
}

// Feed lists all users' public records for one day, newest first.
func (s *RecordService) Feed(date time.Time) ([]FeedItem, error) {
	records, err := s.repo.PublicByDate(period.DayStart(date))
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	items := make([]FeedItem, 0, len(records))
	for _, rec := range records {
		name, ok := names[rec.UserID]
		if !ok {
			profile, err := s.profileRepo.ByUserID(rec.UserID)
			if err != nil {
				name = "Member"
			} else {
				name = profile.Name
			}
			names[rec.UserID] = name
		}

		items = append(items, FeedItem{
			RecordID:        rec.ID,
			AuthorName:      name,
			CategoryCode:    rec.CategoryCode,
			Subcode:         rec.Subcode,
			DurationMinutes: rec.DurationMinutes,
			Comment:         rec.Comment,
			Date:            rec.RecordDate.Format(period.DayFormat),
		})
	}

	return items, nil
}
