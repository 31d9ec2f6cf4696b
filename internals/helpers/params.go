package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParamInt reads an integer path parameter. An absent parameter yields def.
func ParamInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Params(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
