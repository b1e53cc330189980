package api

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/steadyjournal/steady/internal/services"
)

func (handler *Handler) GetExportSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := handler.parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	summary, err := handler.export.BuildSummary(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build export failed")
	}
	return c.JSON(summary)
}

func (handler *Handler) GetExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := handler.parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	entries, err := handler.export.BuildEntries(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build export failed")
	}

	c.Set(fiber.HeaderContentDisposition, exportAttachment(user.ID, "json"))
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) GetExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := handler.parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	entries, err := handler.export.BuildEntries(user.ID, from, to, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build export failed")
	}

	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build export failed")
	}
	for _, entry := range entries {
		if err := writer.Write(entry.Columns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "build export failed")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "build export failed")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, exportAttachment(user.ID, "csv"))
	return c.Send(buffer.Bytes())
}

func exportAttachment(userID uint, extension string) string {
	return fmt.Sprintf(`attachment; filename="steady-export-%d.%s"`, userID, extension)
}
