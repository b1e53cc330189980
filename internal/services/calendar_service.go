package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/steadyjournal/steady/internal/models"
)

var ErrCalendarLoadFailed = errors.New("load calendar data failed")

type CalendarCheckinReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Checkin, error)
}

type CalendarSymptomReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, variant string) ([]models.SymptomLog, error)
}

type CalendarService struct {
	checkins CalendarCheckinReader
	symptoms CalendarSymptomReader
}

func NewCalendarService(checkins CalendarCheckinReader, symptoms CalendarSymptomReader) *CalendarService {
	return &CalendarService{
		checkins: checkins,
		symptoms: symptoms,
	}
}

// BuildMonth fetches the month's rows and derives the per-day summaries.
// Nothing is cached; every call recomputes from the store.
func (service *CalendarService) BuildMonth(userID uint, year int, month time.Month, location *time.Location) ([]DaySummary, error) {
	monthStart, monthEnd := MonthRange(year, month, location)

	checkins, err := service.checkins.ListByUserRange(userID, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCalendarLoadFailed, err)
	}
	symptomLogs, err := service.symptoms.ListByUserRange(userID, &monthStart, &monthEnd, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCalendarLoadFailed, err)
	}

	return BuildMonthSummaries(year, month, checkins, symptomLogs, location), nil
}
