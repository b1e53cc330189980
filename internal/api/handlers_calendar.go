package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/steadyjournal/steady/internal/services"
)

func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	year, err := c.ParamsInt("year")
	if err != nil || year < 2000 || year > 2200 {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}
	monthNumber, err := c.ParamsInt("month")
	if err != nil || monthNumber < 1 || monthNumber > 12 {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}
	month := time.Month(monthNumber)

	summaries, err := handler.calendar.BuildMonth(user.ID, year, month, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load calendar failed")
	}

	previousYear, previousMonth := services.PreviousMonth(year, month)
	nextYear, nextMonth := services.NextMonth(year, month)

	return c.JSON(fiber.Map{
		"year":  year,
		"month": monthNumber,
		"days":  daySummaryViews(summaries),
		"previous": fiber.Map{
			"year":  previousYear,
			"month": int(previousMonth),
		},
		"next": fiber.Map{
			"year":  nextYear,
			"month": int(nextMonth),
		},
	})
}

func daySummaryViews(summaries []services.DaySummary) []fiber.Map {
	views := make([]fiber.Map, 0, len(summaries))
	for _, summary := range summaries {
		view := fiber.Map{
			"date":          summary.DateString,
			"has_checkin":   summary.HasCheckin,
			"has_symptoms":  summary.HasSymptoms,
			"symptom_count": summary.SymptomCount,
		}
		if summary.MoodScore != nil {
			view["mood_score"] = *summary.MoodScore
		}
		views = append(views, view)
	}
	return views
}
