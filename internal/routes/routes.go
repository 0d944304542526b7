package routes

import (
	"net/http"

	"github.com/startbeyond/startbeyond/internal/app"
	"github.com/startbeyond/startbeyond/internal/handler"
	"github.com/startbeyond/startbeyond/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService)
	category := handler.NewCategoryHandler(app.CategoryService)
	goal := handler.NewGoalHandler(app.GoalService)
	task := handler.NewTaskHandler(app.TaskService)
	day := handler.NewDayHandler(app.PlanService, app.RecordService, app.NoteService)
	plan := handler.NewPlanHandler(app.PlanService)
	record := handler.NewRecordHandler(app.RecordService)
	stats := handler.NewStatsHandler(app.StatsService, app.CompletionService)
	feed := handler.NewFeedHandler(app.RecordService)
	notification := handler.NewNotificationHandler(app.NotificationService)
	export := handler.NewExportHandler(app.GoalService, app.TaskService, app.PlanService, app.RecordService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES (/app/*)
	// ============================================================================

	// Profile
	mux.HandleFunc("GET /app/me", middleware.RequireAuth(auth.Me))
	mux.HandleFunc("PATCH /app/profile", middleware.RequireAuth(profile.Update))

	// Categories
	mux.HandleFunc("GET /app/categories", middleware.RequireAuth(category.List))
	mux.HandleFunc("PUT /app/categories/order", middleware.RequireAuth(category.Reorder))
	mux.HandleFunc("PUT /app/categories/{code}", middleware.RequireAuth(category.Upsert))
	mux.HandleFunc("PATCH /app/categories/{code}/active", middleware.RequireAuth(category.SetActive))

	// Monthly goals
	mux.HandleFunc("GET /app/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /app/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("PUT /app/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("PATCH /app/goals/{id}/criteria/{criterionID}", middleware.RequireAuth(goal.ToggleCriterion))
	mux.HandleFunc("DELETE /app/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Weekly tasks
	mux.HandleFunc("GET /app/weekly-tasks", middleware.RequireAuth(task.List))
	mux.HandleFunc("POST /app/weekly-tasks", middleware.RequireAuth(task.Create))
	mux.HandleFunc("PUT /app/weekly-tasks/{id}", middleware.RequireAuth(task.Update))
	mux.HandleFunc("PATCH /app/weekly-tasks/{id}/days/{weekday}", middleware.RequireAuth(task.ToggleDay))
	mux.HandleFunc("PATCH /app/weekly-tasks/{id}/lock", middleware.RequireAuth(task.SetLocked))
	mux.HandleFunc("DELETE /app/weekly-tasks/{id}", middleware.RequireAuth(task.Delete))

	// Day view and notes
	mux.HandleFunc("GET /app/days/{date}", middleware.RequireAuth(day.Show))
	mux.HandleFunc("PUT /app/days/{date}/note", middleware.RequireAuth(day.SetNote))

	// Daily plans
	mux.HandleFunc("POST /app/plans", middleware.RequireAuth(plan.Create))
	mux.HandleFunc("POST /app/plans/materialize", middleware.RequireAuth(plan.Materialize))
	mux.HandleFunc("PUT /app/plans/{id}", middleware.RequireAuth(plan.Update))
	mux.HandleFunc("POST /app/plans/{id}/complete", middleware.RequireAuth(plan.Complete))
	mux.HandleFunc("DELETE /app/plans/{id}", middleware.RequireAuth(plan.Delete))

	// Daily records and memos
	mux.HandleFunc("POST /app/records", middleware.RequireAuth(record.Create))
	mux.HandleFunc("PUT /app/records/{id}", middleware.RequireAuth(record.Update))
	mux.HandleFunc("DELETE /app/records/{id}", middleware.RequireAuth(record.Delete))
	mux.HandleFunc("POST /app/records/{id}/memos", middleware.RequireAuth(record.AddMemo))
	mux.HandleFunc("DELETE /app/records/{id}/memos/{memoID}", middleware.RequireAuth(record.DeleteMemo))

	// Statistics
	mux.HandleFunc("GET /app/stats", middleware.RequireAuth(stats.Stats))
	mux.HandleFunc("GET /app/completion", middleware.RequireAuth(stats.Completion))

	// Community feed
	mux.HandleFunc("GET /app/feed", middleware.RequireAuth(feed.List))

	// Export
	mux.HandleFunc("GET /app/export", middleware.RequireAuth(export.Export))

	// Notifications
	mux.HandleFunc("GET /app/notifications", middleware.RequireAuth(notification.List))
	mux.HandleFunc("POST /app/notifications/{id}/read", middleware.RequireAuth(notification.MarkRead))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.ProfileService),
	)

	return handler
}
