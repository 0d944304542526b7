package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/startbeyond/startbeyond/internal/config"
	"github.com/startbeyond/startbeyond/internal/db"
	"github.com/startbeyond/startbeyond/internal/repository"
	"github.com/startbeyond/startbeyond/internal/service"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	AuthService         *service.AuthService
	ProfileService      *service.ProfileService
	EmailService        *service.EmailService
	CategoryService     *service.CategoryService
	GoalService         *service.GoalService
	TaskService         *service.TaskService
	PlanService         *service.PlanService
	RecordService       *service.RecordService
	NoteService         *service.NoteService
	CompletionService   *service.CompletionService
	StatsService        *service.StatsService
	NotificationService *service.NotificationService
	SummaryService      *service.SummaryService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	categoryRepository := repository.NewCategoryRepository(database)
	goalRepository := repository.NewMonthlyGoalRepository(database)
	taskRepository := repository.NewWeeklyTaskRepository(database)
	planRepository := repository.NewDailyPlanRepository(database)
	recordRepository := repository.NewDailyRecordRepository(database)
	noteRepository := repository.NewDailyNoteRepository(database)
	notificationRepository := repository.NewNotificationRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		profileRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	profileService := service.NewProfileService(profileRepository)
	categoryService := service.NewCategoryService(categoryRepository)
	goalService := service.NewGoalService(goalRepository, categoryService)
	taskService := service.NewTaskService(taskRepository, goalRepository, categoryService)
	planService := service.NewPlanService(planRepository, recordRepository, taskRepository, categoryService)
	recordService := service.NewRecordService(recordRepository, planRepository, profileRepository, categoryService)
	noteService := service.NewNoteService(noteRepository)
	completionService := service.NewCompletionService(planRepository, recordRepository, categoryService)
	statsService := service.NewStatsService(recordRepository, categoryService)
	notificationService := service.NewNotificationService(notificationRepository)
	summaryService := service.NewSummaryService(
		userRepository,
		profileRepository,
		notificationRepository,
		completionService,
		emailService,
	)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		AuthService:         authService,
		ProfileService:      profileService,
		EmailService:        emailService,
		CategoryService:     categoryService,
		GoalService:         goalService,
		TaskService:         taskService,
		PlanService:         planService,
		RecordService:       recordService,
		NoteService:         noteService,
		CompletionService:   completionService,
		StatsService:        statsService,
		NotificationService: notificationService,
		SummaryService:      summaryService,
	}, nil
}

func (a *App) Close() error {
	if a.SummaryService != nil {
		a.SummaryService.Stop()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
