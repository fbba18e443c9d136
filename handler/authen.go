package handler

import (
	"errors"
	"time"

	"foundation_backend/config"
	"foundation_backend/constants"
	"foundation_backend/helper"
	"foundation_backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Login checks the configured admin credentials and sets the signed
// admin_session cookie.
func (h *Handler) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT,
			errors.New("email and password are required"))
	}

	adminEmail := config.Config("ADMIN_EMAIL")
	adminHash := config.Config("ADMIN_PASSWORD_HASH")

	if loginInput.Email != adminEmail || !helper.CheckPasswordHash(loginInput.Password, adminHash) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS,
			errors.New("email or password does not match"))
	}

	token, err := helper.GenerateAdminToken(adminEmail)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "admin_session",
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
		Expires:  time.Now().Add(helper.AdminSessionTTL),
	})

	return c.JSON(fiber.Map{
		"message": "login success",
		"admin":   fiber.Map{"email": adminEmail},
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "admin_session",
		Value:    "",
		HTTPOnly: true,
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"message": "logged out"})
}
