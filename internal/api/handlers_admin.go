package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetAdminStats(c *fiber.Ctx) error {
	stats, err := handler.stats.BuildAdminStats(handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load stats failed")
	}
	return c.JSON(fiber.Map{
		"total_users":            stats.TotalUsers,
		"total_checkins":         stats.TotalCheckins,
		"checkins_today":         stats.CheckinsToday,
		"active_streak_users":    stats.ActiveStreakUsers,
		"average_mood_last_week": stats.AverageMoodLastWeek,
		"symptom_logs_by_kind":   stats.SymptomLogsByKind,
	})
}

func (handler *Handler) GetAdminUsers(c *fiber.Ctx) error {
	rows, err := handler.stats.ListUserActivity()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load users failed")
	}

	views := make([]fiber.Map, 0, len(rows))
	for _, row := range rows {
		views = append(views, fiber.Map{
			"id":             row.ID,
			"email":          row.Email,
			"display_name":   row.DisplayName,
			"role":           row.Role,
			"total_points":   row.TotalPoints,
			"current_streak": row.CurrentStreak,
			"checkin_count":  row.CheckinCount,
			"symptom_count":  row.SymptomCount,
			"created_at":     row.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"users": views})
}
