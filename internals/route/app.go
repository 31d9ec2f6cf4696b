package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	helper "quizku_backend/internals/helpers"
	middlewares "quizku_backend/internals/middlewares"
)

// NewApp builds the Fiber app with middlewares and every route mounted.
func NewApp(db *gorm.DB, cfg *configs.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FromFiberError,
	})

	middlewares.SetupMiddlewares(app, cfg)
	SetupRoutes(app, db, cfg)
	return app
}
