package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/steadyjournal/steady/internal/db"
	"github.com/steadyjournal/steady/internal/models"
)

var (
	ErrInvalidMoodScore    = errors.New("invalid mood score")
	ErrInvalidCheckinNote  = errors.New("invalid checkin note")
	ErrDuplicateCheckin    = errors.New("duplicate checkin")
	ErrCheckinNotFound     = errors.New("checkin not found")
	ErrCheckinLoadFailed   = errors.New("load checkin failed")
	ErrCheckinCreateFailed = errors.New("create checkin failed")
	ErrCheckinDeleteFailed = errors.New("delete checkin failed")
)

// streakWindowDays bounds how far back the streak walk can reach; a streak
// longer than the window is reported at the window size.
const streakWindowDays = 90

const maxCheckinNoteLength = 2000

type CheckinRepository interface {
	ListByUser(userID uint) ([]models.Checkin, error)
	ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Checkin, error)
	ListRecentDates(userID uint, limit int) ([]time.Time, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Checkin, bool, error)
	CreateWithAward(checkin *models.Checkin, entry *models.PointsEntry) error
	AwardForDay(entry *models.PointsEntry) error
	Save(checkin *models.Checkin) error
	DeleteDayWithLedger(userID uint, dayStart time.Time, dayEnd time.Time) error
	DeleteAllForUser(userID uint) error
	UpdateCachedStreak(userID uint, streak int) error
}

type CheckinUserReader interface {
	FindByID(userID uint) (models.User, bool, error)
}

type CheckinService struct {
	checkins CheckinRepository
	users    CheckinUserReader
}

type CheckinAward struct {
	Points int
	Streak int
}

type StreakStatus struct {
	CurrentStreak int
	TotalPoints   int
}

func NewCheckinService(checkins CheckinRepository, users CheckinUserReader) *CheckinService {
	return &CheckinService{
		checkins: checkins,
		users:    users,
	}
}

type CheckinInput struct {
	MoodScore int
	Note      string
}

func (input CheckinInput) validate() error {
	if input.MoodScore < models.MinMoodScore || input.MoodScore > models.MaxMoodScore {
		return ErrInvalidMoodScore
	}
	if len([]rune(input.Note)) > maxCheckinNoteLength {
		return ErrInvalidCheckinNote
	}
	return nil
}

// Create records the day's check-in and its points award in one transaction.
// The (user_id, date) unique index is the authoritative duplicate guard; the
// pre-check only exists to answer the common case without a failed insert.
func (service *CheckinService) Create(userID uint, day time.Time, input CheckinInput, location *time.Location) (models.Checkin, CheckinAward, error) {
	if err := input.validate(); err != nil {
		return models.Checkin{}, CheckinAward{}, err
	}

	dayStart, dayEnd := DayRange(day, location)
	_, exists, err := service.checkins.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.Checkin{}, CheckinAward{}, fmt.Errorf("%w: %v", ErrCheckinLoadFailed, err)
	}
	if exists {
		return models.Checkin{}, CheckinAward{}, ErrDuplicateCheckin
	}

	streak, err := service.streakWithCandidate(userID, dayStart, location)
	if err != nil {
		return models.Checkin{}, CheckinAward{}, fmt.Errorf("%w: %v", ErrCheckinLoadFailed, err)
	}

	checkin := models.Checkin{
		UserID:    userID,
		Date:      dayStart,
		MoodScore: input.MoodScore,
		Note:      strings.TrimSpace(input.Note),
	}
	entry := models.PointsEntry{
		UserID: userID,
		Date:   dayStart,
		Points: AwardPoints(streak),
		Streak: streak,
	}

	if err := service.checkins.CreateWithAward(&checkin, &entry); err != nil {
		if errors.Is(err, db.ErrCheckinDateTaken) {
			return models.Checkin{}, CheckinAward{}, ErrDuplicateCheckin
		}
		return models.Checkin{}, CheckinAward{}, fmt.Errorf("%w: %v", ErrCheckinCreateFailed, err)
	}

	return checkin, CheckinAward{Points: entry.Points, Streak: entry.Streak}, nil
}

// RetryAward reconciles a check-in whose points award never landed. The ledger
// key makes it a no-op when the award already exists, so it is safe to re-run.
func (service *CheckinService) RetryAward(userID uint, day time.Time, location *time.Location) (CheckinAward, error) {
	dayStart, dayEnd := DayRange(day, location)
	_, exists, err := service.checkins.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return CheckinAward{}, fmt.Errorf("%w: %v", ErrCheckinLoadFailed, err)
	}
	if !exists {
		return CheckinAward{}, ErrCheckinNotFound
	}

	streak, err := service.streakWithCandidate(userID, dayStart, location)
	if err != nil {
		return CheckinAward{}, fmt.Errorf("%w: %v", ErrCheckinLoadFailed, err)
	}

	entry := models.PointsEntry{
		UserID: userID,
		Date:   dayStart,
		Points: AwardPoints(streak),
		Streak: streak,
	}
	if err := service.checkins.AwardForDay(&entry); err != nil {
		return CheckinAward{}, fmt.Errorf("%w: %v", ErrCheckinCreateFailed, err)
	}
	return CheckinAward{Points: entry.Points, Streak: entry.Streak}, nil
}

func (service *CheckinService) streakWithCandidate(userID uint, dayStart time.Time, location *time.Location) (int, error) {
	dates, err := service.checkins.ListRecentDates(userID, streakWindowDays)
	if err != nil {
		return 0, err
	}
	return CurrentStreak(append(dates, dayStart), dayStart, location), nil
}

func (service *CheckinService) FetchForRange(userID uint, from *time.Time, to *time.Time, location *time.Location) ([]models.Checkin, error) {
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
	return service.checkins.ListByUserRange(userID, fromStart, toEnd)
}

func (service *CheckinService) FetchAll(userID uint) ([]models.Checkin, error) {
	return service.checkins.ListByUser(userID)
}

func (service *CheckinService) FetchByDate(userID uint, day time.Time, location *time.Location) (models.Checkin, error) {
	dayStart, dayEnd := DayRange(day, location)
	checkin, found, err := service.checkins.FindByUserAndDayRange(userID, dayStart, dayEnd)
	if err != nil {
		return models.Checkin{}, fmt.Errorf("%w: %v", ErrCheckinLoadFailed, err)
	}
	if !found {
		return models.Checkin{}, ErrCheckinNotFound
	}
	return checkin, nil
}

// Correct is the administrative correction path: mood and note may change, the
// date never does.
func (service *CheckinService) Correct(userID uint, day time.Time, input CheckinInput, location *time.Location) (models.Checkin, error) {
	if err := input.validate(); err != nil {
		return models.Checkin{}, err
	}

	checkin, err := service.FetchByDate(userID, day, location)
	if err != nil {
		return models.Checkin{}, err
	}

	checkin.MoodScore = input.MoodScore
	checkin.Note = strings.TrimSpace(input.Note)
	if err := service.checkins.Save(&checkin); err != nil {
		return models.Checkin{}, fmt.Errorf("%w: %v", ErrCheckinCreateFailed, err)
	}
	return checkin, nil
}

// DeleteDay removes one check-in plus its ledger row, then refreshes the
// cached streak counter from the remaining dates.
func (service *CheckinService) DeleteDay(userID uint, day time.Time, now time.Time, location *time.Location) error {
	dayStart, dayEnd := DayRange(day, location)
	if err := service.checkins.DeleteDayWithLedger(userID, dayStart, dayEnd); err != nil {
		return fmt.Errorf("%w: %v", ErrCheckinDeleteFailed, err)
	}
	return service.refreshCachedStreak(userID, now, location)
}

func (service *CheckinService) DeleteAll(userID uint) error {
	if err := service.checkins.DeleteAllForUser(userID); err != nil {
		return fmt.Errorf("%w: %v", ErrCheckinDeleteFailed, err)
	}
	return nil
}

func (service *CheckinService) refreshCachedStreak(userID uint, now time.Time, location *time.Location) error {
	dates, err := service.checkins.ListRecentDates(userID, streakWindowDays)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCheckinLoadFailed, err)
	}
	streak := CurrentStreak(dates, now, location)
	if err := service.checkins.UpdateCachedStreak(userID, streak); err != nil {
		return fmt.Errorf("%w: %v", ErrCheckinDeleteFailed, err)
	}
	return nil
}

// Status recomputes the streak from stored dates rather than trusting the
// cached counter, which can lag a day behind once midnight passes.
func (service *CheckinService) Status(userID uint, now time.Time, location *time.Location) (StreakStatus, error) {
	dates, err := service.checkins.ListRecentDates(userID, streakWindowDays)
	if err != nil {
		return StreakStatus{}, fmt.Errorf("%w: %v", ErrCheckinLoadFailed, err)
	}

	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return StreakStatus{}, fmt.Errorf("%w: %v", ErrCheckinLoadFailed, err)
	}
	if !found {
		return StreakStatus{}, ErrCheckinNotFound
	}

	return StreakStatus{
		CurrentStreak: CurrentStreak(dates, now, location),
		TotalPoints:   user.TotalPoints,
	}, nil
}
