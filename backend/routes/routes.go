package routes

import (
	"macchain/backend/config"
	"macchain/backend/controllers"
	"macchain/backend/middleware"
	"macchain/backend/stats"
	"macchain/backend/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Statistics engine wiring: gorm-backed source and store behind the
	// snapshot cache
	recordStore := storage.NewRecordStore(db)
	snapshotStore := storage.NewSnapshotStore(db)
	statsCache := stats.NewCache(recordStore, snapshotStore, cfg.StatsWindowDays)
	statsService := stats.NewService(statsCache, snapshotStore)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Get("/api/user/settings", authMiddleware, userController.GetSettings)
	app.Put("/api/user/settings", authMiddleware, userController.UpdateSettings)

	// Reading plan routes
	planController := controllers.NewPlanController(db, cfg)
	app.Get("/api/plan/today", authMiddleware, planController.GetToday)
	app.Get("/api/plan/day/:day", authMiddleware, planController.GetDay)

	// Progress routes
	progressController := controllers.NewProgressController(db, cfg)
	app.Get("/api/progress/today", authMiddleware, progressController.GetToday)
	app.Post("/api/progress/reading", authMiddleware, progressController.MarkReading)

	// Statistics routes
	statisticsController := controllers.NewStatisticsController(statsService, cfg)
	statistics := app.Group("/api/statistics", authMiddleware)
	statistics.Get("/", statisticsController.GetLatest)
	statistics.Post("/refresh", statisticsController.Refresh)
	statistics.Get("/date/:date", statisticsController.GetByDate)
	statistics.Get("/monthly/:year/:month", statisticsController.GetMonthly)
	statistics.Get("/yearly/:year", statisticsController.GetYearly)

	// Verse analysis routes
	analysisController := controllers.NewAnalysisController(db, cfg)
	app.Get("/api/analysis/:book/:chapter", authMiddleware, analysisController.GetAnalysis)

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
