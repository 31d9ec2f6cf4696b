package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"quizku_backend/internals/configs"
	"quizku_backend/internals/middlewares/logger"
)

// RequestTimeout stays above the postgres statement_timeout.
const RequestTimeout = 5 * time.Second

// SetupMiddlewares: order matters, recover must wrap everything after it.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RequestContext(RequestTimeout))
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.Server.CorsOrigins))
	app.Use(GlobalRateLimiter(cfg.Server.RateLimitMax))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
}
