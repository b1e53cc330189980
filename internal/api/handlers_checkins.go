package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/steadyjournal/steady/internal/models"
	"github.com/steadyjournal/steady/internal/services"
)

func (handler *Handler) GetCheckins(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := handler.parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	checkins, err := handler.checkins.FetchForRange(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load checkins failed")
	}
	return c.JSON(fiber.Map{"checkins": checkinViews(checkins)})
}

func (handler *Handler) GetCheckin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	checkin, err := handler.checkins.FetchByDate(user.ID, day, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrCheckinNotFound) {
			return apiError(c, fiber.StatusNotFound, "checkin not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "load checkin failed")
	}
	return c.JSON(checkinView(checkin))
}

// CreateCheckin records today's (or an explicit date's) check-in and returns
// the points and streak earned by it.
func (handler *Handler) CreateCheckin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := checkinCreateInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid checkin input")
	}

	day := handler.now()
	if raw := strings.TrimSpace(input.Date); raw != "" {
		parsed, err := time.ParseInLocation(dateParamLayout, raw, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		day = parsed
	}

	checkin, award, err := handler.checkins.Create(user.ID, day, services.CheckinInput{
		MoodScore: input.MoodScore,
		Note:      input.Note,
	}, handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateCheckin):
			return apiError(c, fiber.StatusConflict, "already checked in for this date")
		case errors.Is(err, services.ErrInvalidMoodScore), errors.Is(err, services.ErrInvalidCheckinNote):
			return apiError(c, fiber.StatusBadRequest, "invalid checkin input")
		default:
			return apiError(c, fiber.StatusInternalServerError, "create checkin failed")
		}
	}

	handler.notifications.DispatchCheckinCreated(*user, checkin, award.Streak)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"checkin":        checkinView(checkin),
		"points_awarded": award.Points,
		"streak":         award.Streak,
	})
}

// RetryCheckinAward re-runs the points award for an existing check-in. The
// ledger key makes re-running safe: an already-awarded day changes nothing.
func (handler *Handler) RetryCheckinAward(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	award, err := handler.checkins.RetryAward(user.ID, day, handler.location)
	if err != nil {
		if errors.Is(err, services.ErrCheckinNotFound) {
			return apiError(c, fiber.StatusNotFound, "checkin not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "award retry failed")
	}
	return c.JSON(fiber.Map{
		"points_awarded": award.Points,
		"streak":         award.Streak,
	})
}

// CorrectCheckin is the administrative correction path.
func (handler *Handler) CorrectCheckin(c *fiber.Ctx) error {
	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	targetUserID, err := c.ParamsInt("userID")
	if err != nil || targetUserID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	input := checkinCorrectInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid checkin input")
	}

	checkin, err := handler.checkins.Correct(uint(targetUserID), day, services.CheckinInput{
		MoodScore: input.MoodScore,
		Note:      input.Note,
	}, handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCheckinNotFound):
			return apiError(c, fiber.StatusNotFound, "checkin not found")
		case errors.Is(err, services.ErrInvalidMoodScore), errors.Is(err, services.ErrInvalidCheckinNote):
			return apiError(c, fiber.StatusBadRequest, "invalid checkin input")
		default:
			return apiError(c, fiber.StatusInternalServerError, "correct checkin failed")
		}
	}
	return c.JSON(checkinView(checkin))
}

func (handler *Handler) DeleteCheckin(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	day, err := handler.parseDateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	if err := handler.checkins.DeleteDay(user.ID, day, handler.now(), handler.location); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "delete checkin failed")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

// DeleteAllCheckins clears the user's whole history in one transaction.
func (handler *Handler) DeleteAllCheckins(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.checkins.DeleteAll(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "delete checkins failed")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func (handler *Handler) GetStreak(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	status, err := handler.checkins.Status(user.ID, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load streak failed")
	}
	return c.JSON(fiber.Map{
		"current_streak": status.CurrentStreak,
		"total_points":   status.TotalPoints,
	})
}

func checkinView(checkin models.Checkin) fiber.Map {
	return fiber.Map{
		"id":         checkin.ID,
		"date":       checkin.Date.Format(dateParamLayout),
		"mood_score": checkin.MoodScore,
		"note":       checkin.Note,
	}
}

func checkinViews(checkins []models.Checkin) []fiber.Map {
	views := make([]fiber.Map, 0, len(checkins))
	for _, checkin := range checkins {
		views = append(views, checkinView(checkin))
	}
	return views
}
