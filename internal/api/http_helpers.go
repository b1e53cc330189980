package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateParamLayout = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) parseDateParam(c *fiber.Ctx, name string) (time.Time, error) {
	raw := strings.TrimSpace(c.Params(name))
	parsed, err := time.ParseInLocation(dateParamLayout, raw, handler.location)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// parseRangeQuery reads optional from/to query dates in the display timezone.
func (handler *Handler) parseRangeQuery(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from *time.Time
	var to *time.Time

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		parsed, err := time.ParseInLocation(dateParamLayout, raw, handler.location)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		parsed, err := time.ParseInLocation(dateParamLayout, raw, handler.location)
		if err != nil {
			return nil, nil, err
		}
		to = &parsed
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, errRangeInverted
	}
	return from, to, nil
}

var errRangeInverted = fiber.NewError(fiber.StatusBadRequest, "range inverted")
