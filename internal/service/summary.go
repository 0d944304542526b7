package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/startbeyond/startbeyond/internal/model"
	"github.com/startbeyond/startbeyond/internal/period"
	"github.com/startbeyond/startbeyond/internal/repository"
)

// SummaryService runs the scheduled weekly summary job: for every user it
// computes the prior week's completion summary, stores a notification row
// and sends the summary email. It shares the interactive read path and
// needs no extra synchronization beyond row-level isolation.
type SummaryService struct {
	userRepo          repository.UserRepository
	profileRepo       repository.ProfileRepository
	notificationRepo  repository.NotificationRepository
	completionService *CompletionService
	emailService      *EmailService
	cron              *cron.Cron
}

func NewSummaryService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
	completionService *CompletionService,
	emailService *EmailService,
) *SummaryService {
	return &SummaryService{
		userRepo:          userRepo,
		profileRepo:       profileRepo,
		notificationRepo:  notificationRepo,
		completionService: completionService,
		emailService:      emailService,
		cron:              cron.New(),
	}
}

// Start registers the job under the given cron spec and starts the
// scheduler in the background.
func (s *SummaryService) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.RunWeeklySummaries)
	if err != nil {
		return fmt.Errorf("invalid weekly summary cron spec %q: %w", spec, err)
	}

	s.cron.Start()
	slog.Info("weekly summary scheduler started", "spec", spec)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *SummaryService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// RunWeeklySummaries processes every user for the prior calendar week.
// Per-user failures are logged and skipped; the job itself never fails.
func (s *SummaryService) RunWeeklySummaries() {
	weekStart := period.WeekStart(time.Now()).AddDate(0, 0, -7)
	weekEnd := period.WeekEnd(weekStart)

	users, err := s.userRepo.All()
	if err != nil {
		slog.Error("weekly summary: failed to list users", "error", err)
		return
	}

	slog.Info("weekly summary run started", "week_start", weekStart.Format(period.DayFormat), "users", len(users))

	sent := 0
	for _, user := range users {
		err := s.summarizeUser(user, weekStart, weekEnd)
		if err != nil {
			slog.Error("weekly summary: user skipped", "error", err, "user_id", user.ID)
			continue
		}
		sent++
	}

	slog.Info("weekly summary run finished", "sent", sent, "total", len(users))
}

func (s *SummaryService) summarizeUser(user *model.User, weekStart, weekEnd time.Time) error {
	summary, err := s.completionService.Summary(user.ID, weekStart, weekEnd)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}

	// Nothing planned, nothing to report.
	if summary.TotalPlans == 0 {
		return nil
	}

	notification := &model.Notification{
		UserID: user.ID,
		Kind:   model.NotificationKindWeeklySummary,
		Payload: model.NotificationPayload{
			"week_start":      weekStart.Format(period.DayFormat),
			"total_plans":     summary.TotalPlans,
			"completed_plans": summary.CompletedPlans,
			"completion_rate": summary.CompletionRate,
			"longest_streak":  summary.LongestStreak,
		},
	}
	err = s.notificationRepo.Create(notification)
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	name := "Member"
	profile, err := s.profileRepo.ByUserID(user.ID)
	if err == nil {
		name = profile.Name
	}

	err = s.emailService.SendWeeklySummaryEmail(user.Email, name, weekStart.Format(period.DayFormat), summary)
	if err != nil {
		// The notification row is already stored; the email is best effort.
		slog.Warn("weekly summary: email failed", "error", err, "user_id", user.ID)
	}

	return nil
}
