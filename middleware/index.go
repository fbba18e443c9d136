package middleware

import (
	"errors"

	"foundation_backend/constants"
	"foundation_backend/helper"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected validates the admin_session cookie: a signed, expiring token,
// not a bare presence check.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("admin_session")
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, errors.New("missing session"))
		}

		claims, err := helper.ParseAdminToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
		}

		c.Locals("admin", claims)
		return c.Next()
	}
}
