package services

import (
	"strings"
	"time"

	"github.com/steadyjournal/steady/internal/models"
)

type DaySummary struct {
	Date         time.Time
	DateString   string
	HasCheckin   bool
	MoodScore    *int
	HasSymptoms  bool
	SymptomCount int
}

// SymptomLogHasPayload reports whether the log carries actual content for its
// variant. An empty-payload record still exists as a row, so it contributes to
// SymptomCount but not to HasSymptoms.
func SymptomLogHasPayload(entry models.SymptomLog) bool {
	switch entry.Variant {
	case models.VariantDizziness:
		return len(entry.Symptoms) > 0
	case models.VariantLifestyle:
		return len(entry.DietTags) > 0 || entry.SleepLevel != nil || entry.StressLevel != nil
	case models.VariantMedication:
		return len(entry.Medications) > 0
	case models.VariantVoice:
		return strings.TrimSpace(entry.Note) != ""
	default:
		return false
	}
}

// BuildMonthSummaries derives one summary per calendar day of the month,
// index 0 = day 1. Leading/trailing grid padding is a rendering concern and
// is not produced here.
func BuildMonthSummaries(year int, month time.Month, checkins []models.Checkin, symptomLogs []models.SymptomLog, location *time.Location) []DaySummary {
	if location == nil {
		location = time.UTC
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, location)
	daysInMonth := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond).Day()

	checkinByDate := make(map[string]models.Checkin, len(checkins))
	for _, checkin := range checkins {
		key := DateAtLocation(checkin.Date, location).Format(dayKeyLayout)
		checkinByDate[key] = checkin
	}

	logsByDate := make(map[string][]models.SymptomLog)
	for _, entry := range symptomLogs {
		key := DateAtLocation(entry.RecordedAt, location).Format(dayKeyLayout)
		logsByDate[key] = append(logsByDate[key], entry)
	}

	summaries := make([]DaySummary, 0, daysInMonth)
	for dayOfMonth := 1; dayOfMonth <= daysInMonth; dayOfMonth++ {
		day := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, location)
		key := day.Format(dayKeyLayout)

		summary := DaySummary{
			Date:       day,
			DateString: key,
		}

		if checkin, ok := checkinByDate[key]; ok {
			summary.HasCheckin = true
			moodScore := checkin.MoodScore
			summary.MoodScore = &moodScore
		}

		dayLogs := logsByDate[key]
		summary.SymptomCount = len(dayLogs)
		for _, entry := range dayLogs {
			if SymptomLogHasPayload(entry) {
				summary.HasSymptoms = true
				break
			}
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// PreviousMonth and NextMonth step month boundaries by calendar arithmetic
// alone, rolling over year edges.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// MonthRange returns the half-open instant range covering the month in the
// given location, for store queries.
func MonthRange(year int, month time.Month, location *time.Location) (time.Time, time.Time) {
	if location == nil {
		location = time.UTC
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, location)
	return start, start.AddDate(0, 1, 0)
}
