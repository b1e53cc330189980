package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/steadyjournal/steady/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid registration input")
	}

	user, err := handler.auth.Register(input.Email, input.Password, input.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusBadRequest, "invalid registration input")
		default:
			return apiError(c, fiber.StatusInternalServerError, "registration failed")
		}
	}

	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "session setup failed")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"role":         user.Role,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid login input")
	}

	user, err := handler.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "session setup failed")
	}
	return c.JSON(fiber.Map{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"role":         user.Role,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "logged_out"})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid password input")
	}

	if err := handler.auth.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch):
			return apiError(c, fiber.StatusBadRequest, "invalid current password")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "weak password")
		default:
			return apiError(c, fiber.StatusInternalServerError, "password change failed")
		}
	}
	return c.JSON(fiber.Map{"status": "password_changed"})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.auth.DeleteAccount(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "account deletion failed")
	}
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"status": "account_deleted"})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{
		"id":             user.ID,
		"email":          user.Email,
		"display_name":   user.DisplayName,
		"role":           user.Role,
		"total_points":   user.TotalPoints,
		"current_streak": user.CurrentStreak,
	})
}
