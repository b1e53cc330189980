package services

import (
	"testing"
	"time"

	"github.com/steadyjournal/steady/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(value int) *int {
	return &value
}

func TestBuildMonthSummariesLength(t *testing.T) {
	location := DisplayLocation(8)

	tests := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2025, time.April, 30},
		{2025, time.March, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
	}
	for _, tt := range tests {
		summaries := BuildMonthSummaries(tt.year, tt.month, nil, nil, location)
		assert.Len(t, summaries, tt.days, "%d-%02d", tt.year, tt.month)
	}
}

func TestBuildMonthSummariesMarksCheckins(t *testing.T) {
	location := DisplayLocation(8)

	checkins := []models.Checkin{
		{UserID: 1, Date: time.Date(2025, 4, 5, 0, 0, 0, 0, location), MoodScore: 4, Note: "good day"},
		{UserID: 1, Date: time.Date(2025, 4, 12, 0, 0, 0, 0, location), MoodScore: 2},
	}

	summaries := BuildMonthSummaries(2025, time.April, checkins, nil, location)
	require.Len(t, summaries, 30)

	day5 := summaries[4]
	assert.Equal(t, "2025-04-05", day5.DateString)
	assert.True(t, day5.HasCheckin)
	require.NotNil(t, day5.MoodScore)
	assert.Equal(t, 4, *day5.MoodScore)

	day12 := summaries[11]
	assert.True(t, day12.HasCheckin)
	require.NotNil(t, day12.MoodScore)
	assert.Equal(t, 2, *day12.MoodScore)

	day6 := summaries[5]
	assert.False(t, day6.HasCheckin)
	assert.Nil(t, day6.MoodScore)
}

// An empty-payload log still exists as a row, so it raises the raw count
// without flagging the day as symptomatic.
func TestBuildMonthSummariesEmptyPayloadCountsButDoesNotFlag(t *testing.T) {
	location := DisplayLocation(8)
	recordedAt := time.Date(2025, 4, 10, 9, 30, 0, 0, location)

	logs := []models.SymptomLog{
		{UserID: 1, Variant: models.VariantDizziness, RecordedAt: recordedAt},
		{UserID: 1, Variant: models.VariantVoice, RecordedAt: recordedAt, Note: "   "},
	}

	summaries := BuildMonthSummaries(2025, time.April, nil, logs, location)
	day10 := summaries[9]
	assert.Equal(t, 2, day10.SymptomCount)
	assert.False(t, day10.HasSymptoms)
}

func TestBuildMonthSummariesPayloadFlagsDay(t *testing.T) {
	location := DisplayLocation(8)
	recordedAt := time.Date(2025, 4, 10, 9, 30, 0, 0, location)

	logs := []models.SymptomLog{
		{UserID: 1, Variant: models.VariantDizziness, RecordedAt: recordedAt},
		{UserID: 1, Variant: models.VariantLifestyle, RecordedAt: recordedAt, SleepLevel: intPtr(3)},
	}

	summaries := BuildMonthSummaries(2025, time.April, nil, logs, location)
	day10 := summaries[9]
	assert.Equal(t, 2, day10.SymptomCount)
	assert.True(t, day10.HasSymptoms)
}

func TestSymptomLogHasPayload(t *testing.T) {
	tests := []struct {
		name  string
		entry models.SymptomLog
		want  bool
	}{
		{"dizziness empty", models.SymptomLog{Variant: models.VariantDizziness}, false},
		{"dizziness tagged", models.SymptomLog{Variant: models.VariantDizziness, Symptoms: []string{"vertigo"}}, true},
		{"lifestyle empty", models.SymptomLog{Variant: models.VariantLifestyle}, false},
		{"lifestyle sleep only", models.SymptomLog{Variant: models.VariantLifestyle, SleepLevel: intPtr(2)}, true},
		{"lifestyle diet only", models.SymptomLog{Variant: models.VariantLifestyle, DietTags: []string{"coffee"}}, true},
		{"medication empty", models.SymptomLog{Variant: models.VariantMedication}, false},
		{"medication listed", models.SymptomLog{Variant: models.VariantMedication, Medications: []string{"betahistine"}}, true},
		{"voice blank note", models.SymptomLog{Variant: models.VariantVoice, Note: "  "}, false},
		{"voice note", models.SymptomLog{Variant: models.VariantVoice, Note: "hoarse in the morning"}, true},
		{"unknown variant", models.SymptomLog{Variant: "other", Note: "text"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SymptomLogHasPayload(tt.entry))
		})
	}
}

func TestMonthNavigation(t *testing.T) {
	year, month := PreviousMonth(2025, time.January)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)

	year, month = PreviousMonth(2025, time.March)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.February, month)

	year, month = NextMonth(2025, time.December)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)

	year, month = NextMonth(2025, time.April)
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.May, month)
}

func TestMonthRange(t *testing.T) {
	location := DisplayLocation(8)
	start, end := MonthRange(2025, time.April, location)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, location), start)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, location), end)
}
