package routes

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	routeDetails "quizku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	startTime := time.Now()

	slog.Info("setting up base routes")
	BaseRoutes(app, db, startTime)

	slog.Info("mounting quiz routes", "prune_mode", cfg.PruneMode)
	routeDetails.QuizRoutes(app, db, cfg)
}
