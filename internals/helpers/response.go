package helper

import (
	"github.com/gofiber/fiber/v2"

	database "quizku_backend/internals/databases"
	"quizku_backend/internals/helpers/slogcustom"
)

// GenericErrorMessage is the only error detail a client ever sees.
const GenericErrorMessage = "An error occurred"

// JsonMessage: {"message": ...}
func JsonMessage(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
	})
}

// JsonKey: 200 with the payload under a single key, e.g. {"full_quiz": [...]}.
func JsonKey(c *fiber.Ctx, key string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		key: data,
	})
}

// JsonInternalError logs err at CRITICAL level with the request id and any
// driver detail, then answers 500 with the generic body.
func JsonInternalError(c *fiber.Ctx, op string, err error) error {
	args := []any{
		"op", op,
		"method", c.Method(),
		"path", c.Path(),
		"err", err,
	}
	if id, ok := c.Locals("reqid").(string); ok && id != "" {
		args = append(args, "request_id", id)
	}
	if detail := database.DescribeError(err); detail != "" {
		args = append(args, "db", detail)
	}
	slogcustom.Critical(c.UserContext(), "request failed", args...)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": GenericErrorMessage,
	})
}

// FromFiberError maps a *fiber.Error raised by a handler or middleware to the
// generic body for 5xx and to {"message"} otherwise.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok && fe.Code < fiber.StatusInternalServerError {
		return JsonMessage(c, fe.Code, fe.Message)
	}
	return JsonInternalError(c, "unhandled", err)
}
