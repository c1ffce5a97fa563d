package httpserver

import (
	"time"

	"campus-finance-go/internal/config"
	"campus-finance-go/internal/transport/httpserver/handler"
	"campus-finance-go/internal/transport/httpserver/middleware"
	"campus-finance-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Logger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(30 * time.Second))
	router.Use(middleware.NewCORS(cfg.CORSOrigins))

	auth := middleware.NewJWTAuth(cfg.Auth, log)

	router.Route("/api", func(api chi.Router) {
		api.Get("/health", handlers.Health)

		api.Group(func(protected chi.Router) {
			protected.Use(auth.Middleware)

			protected.Route("/transactions", func(r chi.Router) {
				r.Get("/", handlers.ListTransactions)
				r.Post("/", handlers.CreateTransaction)
				r.Put("/{id}", handlers.UpdateTransaction)
				r.Delete("/{id}", handlers.DeleteTransaction)
			})

			protected.Route("/categories", func(r chi.Router) {
				r.Get("/", handlers.ListCategories)
				r.Post("/", handlers.CreateCategory)
				r.Put("/{id}", handlers.UpdateCategory)
				r.Delete("/{id}", handlers.DeleteCategory)
			})

			protected.Route("/budgets", func(r chi.Router) {
				r.Get("/", handlers.ListBudgets)
				r.Post("/", handlers.CreateBudget)
				r.Put("/{id}", handlers.UpdateBudget)
				r.Delete("/{id}", handlers.DeleteBudget)
			})

			protected.Route("/goals", func(r chi.Router) {
				r.Get("/", handlers.ListGoals)
				r.Post("/", handlers.CreateGoal)
				r.Put("/{id}", handlers.UpdateGoal)
				r.Delete("/{id}", handlers.DeleteGoal)
			})

			protected.Route("/alerts", func(r chi.Router) {
				r.Get("/", handlers.ListAlerts)
				r.Get("/unread", handlers.UnreadAlerts)
				r.Get("/statistics", handlers.AlertStatistics)
				r.Post("/mark_all_read", handlers.MarkAllAlertsRead)
				r.Post("/{id}/read", handlers.MarkAlertRead)
				r.Delete("/{id}", handlers.DeactivateAlert)
			})

			protected.Route("/export-tasks", func(r chi.Router) {
				r.Get("/", handlers.ListExportTasks)
				r.Post("/", handlers.CreateExportTask)
				r.Get("/statistics", handlers.ExportStatistics)
				r.Get("/options", handlers.ExportOptions)
				r.Get("/{id}", handlers.GetExportTask)
				r.Post("/{id}/retry", handlers.RetryExportTask)
				r.Get("/{id}/download", handlers.DownloadExportTask)
			})

			protected.Route("/statistics", func(r chi.Router) {
				r.Get("/summary", handlers.StatisticsSummary)
				r.Get("/categories", handlers.StatisticsCategories)
				r.Get("/trend", handlers.StatisticsTrend)
			})

			protected.Route("/planning", func(r chi.Router) {
				r.Get("/prediction", handlers.PlanningPrediction)
				r.Get("/recommendations", handlers.PlanningRecommendations)
			})

			protected.Route("/students", func(r chi.Router) {
				r.Get("/", handlers.ListStudents)
				r.Post("/", handlers.CreateStudent)
				r.Get("/me", handlers.CurrentStudent)
				r.Get("/{id}", handlers.GetStudent)
				r.Put("/{id}", handlers.UpdateStudent)
				r.Delete("/{id}", handlers.DeleteStudent)
			})

			protected.Route("/fees", func(r chi.Router) {
				r.Get("/categories", handlers.ListFeeCategories)
				r.Post("/categories", handlers.CreateFeeCategory)
				r.Delete("/categories/{id}", handlers.DeleteFeeCategory)
				r.Get("/records", handlers.ListFeeRecords)
				r.Post("/records", handlers.CreateFeeRecord)
				r.Get("/records/statistics", handlers.FeeStatistics)
				r.Get("/records/{id}", handlers.GetFeeRecord)
				r.Post("/payments", handlers.RecordFeePayment)
				r.Get("/payments", handlers.ListFeePayments)
			})
		})
	})

	return router
}
