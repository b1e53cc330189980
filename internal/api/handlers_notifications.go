package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/steadyjournal/steady/internal/models"
	"github.com/steadyjournal/steady/internal/services"
)

func (handler *Handler) GetNotifications(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	unreadOnly := c.QueryBool("unread")
	notifications, err := handler.notifications.FetchForUser(user.ID, unreadOnly)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load notifications failed")
	}

	views := make([]fiber.Map, 0, len(notifications))
	for _, notification := range notifications {
		views = append(views, notificationView(notification))
	}
	return c.JSON(fiber.Map{"notifications": views})
}

func (handler *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notificationID := strings.TrimSpace(c.Params("id"))
	if notificationID == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	if err := handler.notifications.MarkRead(notificationID, user.ID); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return apiError(c, fiber.StatusNotFound, "notification not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "update notification failed")
	}
	return c.JSON(fiber.Map{"status": "read"})
}

func notificationView(notification models.Notification) fiber.Map {
	return fiber.Map{
		"id":         notification.ID,
		"kind":       notification.Kind,
		"message":    notification.Message,
		"read":       notification.Read,
		"created_at": notification.CreatedAt,
	}
}
