package details

import (
	quizRoute "quizku_backend/internals/features/quizzes/quiz/route"
	quizService "quizku_backend/internals/features/quizzes/quiz/service"

	"quizku_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// QuizRoutes mounts the quiz API at the root, matching the paths the frontend calls.
func QuizRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	quizRoute.QuizRoutes(app, db, quizService.PruneMode(cfg.PruneMode))
}
