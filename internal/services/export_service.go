package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/steadyjournal/steady/internal/models"
)

var ErrExportLoadFailed = errors.New("load export data failed")

const exportDateLayout = "2006-01-02"

var ExportCSVHeaders = []string{
	"Date",
	"Mood",
	"Note",
	"Symptom logs",
	"Dizziness",
	"Lifestyle",
	"Medication",
	"Voice",
}

type ExportCheckinReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Checkin, error)
}

type ExportSymptomReader interface {
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, variant string) ([]models.SymptomLog, error)
}

type ExportService struct {
	checkins ExportCheckinReader
	symptoms ExportSymptomReader
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportEntry struct {
	Date            string         `json:"date"`
	MoodScore       int            `json:"mood_score"`
	Note            string         `json:"note"`
	SymptomLogCount int            `json:"symptom_log_count"`
	SymptomsByKind  map[string]int `json:"symptoms_by_kind"`
}

func NewExportService(checkins ExportCheckinReader, symptoms ExportSymptomReader) *ExportService {
	return &ExportService{
		checkins: checkins,
		symptoms: symptoms,
	}
}

func (service *ExportService) BuildSummary(userID uint, from *time.Time, to *time.Time, location *time.Location) (ExportSummary, error) {
	checkins, err := service.loadCheckins(userID, from, to, location)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(checkins) == 0 {
		return ExportSummary{}, nil
	}

	first := checkins[0].Date
	last := checkins[len(checkins)-1].Date
	for _, checkin := range checkins {
		if checkin.Date.Before(first) {
			first = checkin.Date
		}
		if checkin.Date.After(last) {
			last = checkin.Date
		}
	}

	return ExportSummary{
		TotalEntries: len(checkins),
		HasData:      true,
		DateFrom:     DateAtLocation(first, location).Format(exportDateLayout),
		DateTo:       DateAtLocation(last, location).Format(exportDateLayout),
	}, nil
}

func (service *ExportService) BuildEntries(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]ExportEntry, error) {
	checkins, err := service.loadCheckins(userID, from, to, location)
	if err != nil {
		return nil, err
	}

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
	symptomLogs, err := service.symptoms.ListByUserRange(userID, fromStart, toEnd, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportLoadFailed, err)
	}

	logCountsByDay := make(map[string]map[string]int)
	for _, entry := range symptomLogs {
		key := DateAtLocation(entry.RecordedAt, location).Format(exportDateLayout)
		if logCountsByDay[key] == nil {
			logCountsByDay[key] = make(map[string]int)
		}
		logCountsByDay[key][entry.Variant]++
	}

	entries := make([]ExportEntry, 0, len(checkins))
	for _, checkin := range checkins {
		key := DateAtLocation(checkin.Date, location).Format(exportDateLayout)
		byKind := logCountsByDay[key]
		total := 0
		for _, count := range byKind {
			total += count
		}
		if byKind == nil {
			byKind = map[string]int{}
		}
		entries = append(entries, ExportEntry{
			Date:            key,
			MoodScore:       checkin.MoodScore,
			Note:            checkin.Note,
			SymptomLogCount: total,
			SymptomsByKind:  byKind,
		})
	}
	return entries, nil
}

func (entry ExportEntry) Columns() []string {
	return []string{
		entry.Date,
		strconv.Itoa(entry.MoodScore),
		entry.Note,
		strconv.Itoa(entry.SymptomLogCount),
		strconv.Itoa(entry.SymptomsByKind[models.VariantDizziness]),
		strconv.Itoa(entry.SymptomsByKind[models.VariantLifestyle]),
		strconv.Itoa(entry.SymptomsByKind[models.VariantMedication]),
		strconv.Itoa(entry.SymptomsByKind[models.VariantVoice]),
	}
}

func (service *ExportService) loadCheckins(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]models.Checkin, error) {
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

	checkins, err := service.checkins.ListByUserRange(userID, fromStart, toEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportLoadFailed, err)
	}
	return checkins, nil
}
