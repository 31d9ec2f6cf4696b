package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizcontroller "quizku_backend/internals/features/quizzes/quiz/controller"
	quizservice "quizku_backend/internals/features/quizzes/quiz/service"
)

/*
Catatan:
- Path dibiarkan datar (tanpa prefix /api) mengikuti frontend yang sudah ada.
- Endpoint debug mengembalikan isi tabel apa adanya.
*/

func QuizRoutes(r fiber.Router, db *gorm.DB, mode quizservice.PruneMode) {
	ctrl := quizcontroller.NewQuizController(quizservice.NewQuizService(db, mode))

	r.Get("/get-full-quiz/:quiz_id", ctrl.GetFullQuiz) // GET  /get-full-quiz/1
	r.Post("/save-quiz", ctrl.SaveQuiz)                // POST /save-quiz
	r.Post("/delete-quiz", ctrl.DeleteQuiz)            // POST /delete-quiz
	r.Get("/get-quiz", ctrl.GetQuizList)               // GET  /get-quiz (all)
	r.Get("/get-quiz/:limit", ctrl.GetQuizList)        // GET  /get-quiz/10
	r.Post("/evaluate-quiz", ctrl.EvaluateQuiz)        // POST /evaluate-quiz

	r.Get("/debug-quiz", ctrl.DebugTable(quizservice.TableQuiz))
	r.Get("/debug-quiz-question", ctrl.DebugTable(quizservice.TableQuizQuestion))
	r.Get("/debug-quiz-option", ctrl.DebugTable(quizservice.TableQuizOption))
}
