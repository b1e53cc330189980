package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/steadyjournal/steady/internal/models"
)

var (
	ErrInvalidSymptomVariant = errors.New("invalid symptom variant")
	ErrInvalidSymptomLevel   = errors.New("invalid symptom level")
	ErrInvalidSymptomNote    = errors.New("invalid symptom note")
	ErrSymptomLogNotFound    = errors.New("symptom log not found")
	ErrSymptomCreateFailed   = errors.New("create symptom log failed")
	ErrSymptomDeleteFailed   = errors.New("delete symptom log failed")
)

const (
	minLevel          = 1
	maxLevel          = 5
	maxSymptomTags    = 30
	maxVoiceNoteRunes = 4000
)

type SymptomLogStore interface {
	Create(entry *models.SymptomLog) error
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, variant string) ([]models.SymptomLog, error)
	FindByIDForUser(logID uint, userID uint) (models.SymptomLog, bool, error)
	Delete(entry *models.SymptomLog) error
}

type SymptomService struct {
	logs SymptomLogStore
}

func NewSymptomService(logs SymptomLogStore) *SymptomService {
	return &SymptomService{logs: logs}
}

type SymptomLogInput struct {
	Variant     string
	Symptoms    []string
	DietTags    []string
	SleepLevel  *int
	StressLevel *int
	Medications []string
	Note        string
}

// Create records an immutable symptom log. An empty payload is allowed — it
// still counts toward the day's raw symptom count — but the variant must be
// known and levels, when given, must sit in 1..5.
func (service *SymptomService) Create(userID uint, recordedAt time.Time, input SymptomLogInput) (models.SymptomLog, error) {
	variant := strings.ToLower(strings.TrimSpace(input.Variant))
	if !isKnownVariant(variant) {
		return models.SymptomLog{}, ErrInvalidSymptomVariant
	}
	if err := validateLevel(input.SleepLevel); err != nil {
		return models.SymptomLog{}, err
	}
	if err := validateLevel(input.StressLevel); err != nil {
		return models.SymptomLog{}, err
	}
	if len([]rune(input.Note)) > maxVoiceNoteRunes {
		return models.SymptomLog{}, ErrInvalidSymptomNote
	}

	entry := models.SymptomLog{
		UserID:     userID,
		Variant:    variant,
		RecordedAt: recordedAt,
	}
	switch variant {
	case models.VariantDizziness:
		entry.Symptoms = normalizeTags(input.Symptoms)
	case models.VariantLifestyle:
		entry.DietTags = normalizeTags(input.DietTags)
		entry.SleepLevel = input.SleepLevel
		entry.StressLevel = input.StressLevel
	case models.VariantMedication:
		entry.Medications = normalizeTags(input.Medications)
	case models.VariantVoice:
		entry.Note = strings.TrimSpace(input.Note)
	}

	if err := service.logs.Create(&entry); err != nil {
		return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrSymptomCreateFailed, err)
	}
	return entry, nil
}

func (service *SymptomService) FetchForRange(userID uint, from *time.Time, to *time.Time, variant string, location *time.Location) ([]models.SymptomLog, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, location)
		toEnd = &end
	}

	variant = strings.ToLower(strings.TrimSpace(variant))
	if variant != "" && !isKnownVariant(variant) {
		return nil, ErrInvalidSymptomVariant
	}
	return service.logs.ListByUserRange(userID, fromStart, toEnd, variant)
}

func (service *SymptomService) DeleteForUser(userID uint, logID uint) error {
	entry, found, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSymptomDeleteFailed, err)
	}
	if !found {
		return ErrSymptomLogNotFound
	}
	if err := service.logs.Delete(&entry); err != nil {
		return fmt.Errorf("%w: %v", ErrSymptomDeleteFailed, err)
	}
	return nil
}

func isKnownVariant(variant string) bool {
	for _, known := range models.KnownVariants() {
		if variant == known {
			return true
		}
	}
	return false
}

func validateLevel(level *int) error {
	if level == nil {
		return nil
	}
	if *level < minLevel || *level > maxLevel {
		return ErrInvalidSymptomLevel
	}
	return nil
}

func normalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, tag := range raw {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, trimmed)
		if len(tags) == maxSymptomTags {
			break
		}
	}
	return tags
}
