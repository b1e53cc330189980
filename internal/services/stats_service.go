package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/steadyjournal/steady/internal/db"
)

var ErrStatsLoadFailed = errors.New("load stats failed")

type StatsCheckinReader interface {
	CountAll() (int64, error)
	CountSince(dayStart time.Time) (int64, error)
	AverageMoodSince(dayStart time.Time) (float64, error)
}

type StatsUserReader interface {
	Count() (int64, error)
	CountWithActiveStreak() (int64, error)
	ListWithActivity() ([]db.UserActivityRow, error)
}

type StatsSymptomReader interface {
	CountByVariant() (map[string]int64, error)
}

type StatsService struct {
	users    StatsUserReader
	checkins StatsCheckinReader
	symptoms StatsSymptomReader
}

// AdminStats carries aggregate metadata only. Voice note content never flows
// through this path.
type AdminStats struct {
	TotalUsers          int64
	TotalCheckins       int64
	CheckinsToday       int64
	ActiveStreakUsers   int64
	AverageMoodLastWeek float64
	SymptomLogsByKind   map[string]int64
}

func NewStatsService(users StatsUserReader, checkins StatsCheckinReader, symptoms StatsSymptomReader) *StatsService {
	return &StatsService{
		users:    users,
		checkins: checkins,
		symptoms: symptoms,
	}
}

func (service *StatsService) BuildAdminStats(now time.Time, location *time.Location) (AdminStats, error) {
	todayStart, _ := DayRange(now, location)
	weekStart := todayStart.AddDate(0, 0, -6)

	totalUsers, err := service.users.Count()
	if err != nil {
		return AdminStats{}, fmt.Errorf("%w: %v", ErrStatsLoadFailed, err)
	}
	totalCheckins, err := service.checkins.CountAll()
	if err != nil {
		return AdminStats{}, fmt.Errorf("%w: %v", ErrStatsLoadFailed, err)
	}
	checkinsToday, err := service.checkins.CountSince(todayStart)
	if err != nil {
		return AdminStats{}, fmt.Errorf("%w: %v", ErrStatsLoadFailed, err)
	}
	activeStreaks, err := service.users.CountWithActiveStreak()
	if err != nil {
		return AdminStats{}, fmt.Errorf("%w: %v", ErrStatsLoadFailed, err)
	}
	averageMood, err := service.checkins.AverageMoodSince(weekStart)
	if err != nil {
		return AdminStats{}, fmt.Errorf("%w: %v", ErrStatsLoadFailed, err)
	}
	symptomCounts, err := service.symptoms.CountByVariant()
	if err != nil {
		return AdminStats{}, fmt.Errorf("%w: %v", ErrStatsLoadFailed, err)
	}

	return AdminStats{
		TotalUsers:          totalUsers,
		TotalCheckins:       totalCheckins,
		CheckinsToday:       checkinsToday,
		ActiveStreakUsers:   activeStreaks,
		AverageMoodLastWeek: averageMood,
		SymptomLogsByKind:   symptomCounts,
	}, nil
}

func (service *StatsService) ListUserActivity() ([]db.UserActivityRow, error) {
	rows, err := service.users.ListWithActivity()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStatsLoadFailed, err)
	}
	return rows, nil
}
