package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	dto "quizku_backend/internals/features/quizzes/quiz/dto"
	service "quizku_backend/internals/features/quizzes/quiz/service"
	helper "quizku_backend/internals/helpers"
)

const (
	msgSaved        = "Quiz saved successfully"
	msgSaveFailed   = "Failed to save quiz"
	msgDeleted      = "Quiz deleted successfully"
	msgDeleteFailed = "Failed to delete quiz"
	msgLimitNotInt  = "limit needs to be an integer"
	msgEvaluateKeys = "Data requires keys 'quiz_id' and 'selections'"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

/* =======================
   Handlers
======================= */

// GET /get-full-quiz/:quiz_id
func (ctrl *QuizController) GetFullQuiz(c *fiber.Ctx) error {
	quizID, err := helper.ParamInt(c, "quiz_id", 0)
	if err != nil {
		return helper.JsonInternalError(c, "get full quiz", err)
	}

	rows, err := ctrl.Service.SelectFullQuiz(c.UserContext(), &quizID)
	if err != nil {
		return helper.JsonInternalError(c, "get full quiz", err)
	}
	return helper.JsonKey(c, "full_quiz", rows)
}

// POST /save-quiz
func (ctrl *QuizController) SaveQuiz(c *fiber.Ctx) error {
	var body dto.SaveQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonInternalError(c, "save quiz", fmt.Errorf("%w: %v", service.ErrMalformedPayload, err))
	}

	res, err := ctrl.Service.SaveQuiz(c.UserContext(), &body)
	if err != nil {
		return helper.JsonInternalError(c, "save quiz", err)
	}
	if !res.Saved {
		return helper.JsonMessage(c, fiber.StatusOK, msgSaveFailed)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": msgSaved,
		"quiz_id": res.QuizID,
	})
}

// POST /delete-quiz
func (ctrl *QuizController) DeleteQuiz(c *fiber.Ctx) error {
	var body dto.DeleteQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonInternalError(c, "delete quiz", fmt.Errorf("%w: %v", service.ErrMalformedPayload, err))
	}

	deleted, err := ctrl.Service.DeleteQuiz(c.UserContext(), &body)
	if err != nil {
		return helper.JsonInternalError(c, "delete quiz", err)
	}
	if !deleted {
		return helper.JsonMessage(c, fiber.StatusOK, msgDeleteFailed)
	}
	return helper.JsonMessage(c, fiber.StatusOK, msgDeleted)
}

// GET /get-quiz and /get-quiz/:limit (0 or absent = all)
func (ctrl *QuizController) GetQuizList(c *fiber.Ctx) error {
	limit, err := helper.ParamInt(c, "limit", 0)
	if err != nil || limit < 0 {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgLimitNotInt)
	}

	items, err := ctrl.Service.GetQuizList(c.UserContext(), limit)
	if err != nil {
		return helper.JsonInternalError(c, "get quiz list", err)
	}
	return helper.JsonKey(c, "quiz_list", items)
}

// POST /evaluate-quiz
func (ctrl *QuizController) EvaluateQuiz(c *fiber.Ctx) error {
	var body dto.EvaluateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgEvaluateKeys)
	}

	result, err := ctrl.Service.EvaluateQuiz(c.UserContext(), &body)
	if errors.Is(err, service.ErrMalformedPayload) {
		return helper.JsonMessage(c, fiber.StatusBadRequest, msgEvaluateKeys)
	}
	if err != nil {
		return helper.JsonInternalError(c, "evaluate quiz", err)
	}
	return helper.JsonKey(c, "result", result)
}

// DebugTable: GET /debug-quiz, /debug-quiz-question, /debug-quiz-option
func (ctrl *QuizController) DebugTable(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := ctrl.Service.FetchTableData(c.UserContext(), table)
		if err != nil {
			return helper.JsonInternalError(c, "debug "+table, err)
		}
		return helper.JsonKey(c, "data", rows)
	}
}
