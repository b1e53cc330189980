package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/steadyjournal/steady/internal/models"
	"github.com/steadyjournal/steady/internal/services"
)

func (handler *Handler) CreateSymptomLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := symptomLogInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom input")
	}

	entry, err := handler.symptoms.Create(user.ID, handler.now(), services.SymptomLogInput{
		Variant:     input.Variant,
		Symptoms:    input.Symptoms,
		DietTags:    input.DietTags,
		SleepLevel:  input.SleepLevel,
		StressLevel: input.StressLevel,
		Medications: input.Medications,
		Note:        input.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSymptomVariant),
			errors.Is(err, services.ErrInvalidSymptomLevel),
			errors.Is(err, services.ErrInvalidSymptomNote):
			return apiError(c, fiber.StatusBadRequest, "invalid symptom input")
		default:
			return apiError(c, fiber.StatusInternalServerError, "create symptom log failed")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(symptomLogView(entry))
}

func (handler *Handler) GetSymptomLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := handler.parseRangeQuery(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date range")
	}

	logs, err := handler.symptoms.FetchForRange(user.ID, from, to, c.Query("variant"), handler.location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidSymptomVariant) {
			return apiError(c, fiber.StatusBadRequest, "invalid variant")
		}
		return apiError(c, fiber.StatusInternalServerError, "load symptom logs failed")
	}

	views := make([]fiber.Map, 0, len(logs))
	for _, entry := range logs {
		views = append(views, symptomLogView(entry))
	}
	return c.JSON(fiber.Map{"symptom_logs": views})
}

func (handler *Handler) DeleteSymptomLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logID, err := c.ParamsInt("id")
	if err != nil || logID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom log id")
	}

	if err := handler.symptoms.DeleteForUser(user.ID, uint(logID)); err != nil {
		if errors.Is(err, services.ErrSymptomLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "symptom log not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "delete symptom log failed")
	}
	return c.JSON(fiber.Map{"status": "deleted"})
}

func symptomLogView(entry models.SymptomLog) fiber.Map {
	view := fiber.Map{
		"id":          entry.ID,
		"variant":     entry.Variant,
		"recorded_at": entry.RecordedAt,
	}
	switch entry.Variant {
	case models.VariantDizziness:
		view["symptoms"] = entry.Symptoms
	case models.VariantLifestyle:
		view["diet_tags"] = entry.DietTags
		view["sleep_level"] = entry.SleepLevel
		view["stress_level"] = entry.StressLevel
	case models.VariantMedication:
		view["medications"] = entry.Medications
	case models.VariantVoice:
		view["note"] = entry.Note
	}
	return view
}
