package services

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

const reminderMessage = "You have not checked in today yet. A quick entry keeps your streak alive."

type ReminderUserReader interface {
	ListIDsWithoutCheckinBetween(dayStart time.Time, dayEnd time.Time) ([]uint, error)
}

type ReminderNotifier interface {
	CreateReminder(userID uint, message string) error
}

// ReminderJob inserts a reminder notification for every user who has not
// checked in by the configured hour of the display-timezone day.
type ReminderJob struct {
	scheduler *gocron.Scheduler
	users     ReminderUserReader
	notifier  ReminderNotifier
	location  *time.Location
	hour      int
}

func NewReminderJob(users ReminderUserReader, notifier ReminderNotifier, location *time.Location, hour int) *ReminderJob {
	if hour < 0 || hour > 23 {
		hour = 20
	}
	return &ReminderJob{
		scheduler: gocron.NewScheduler(location),
		users:     users,
		notifier:  notifier,
		location:  location,
		hour:      hour,
	}
}

func (job *ReminderJob) Start() error {
	at := fmt.Sprintf("%02d:00", job.hour)
	if _, err := job.scheduler.Every(1).Day().At(at).Do(job.RunOnce); err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}
	job.scheduler.StartAsync()
	return nil
}

func (job *ReminderJob) Stop() {
	job.scheduler.Stop()
}

func (job *ReminderJob) RunOnce() {
	dayStart, dayEnd := DayRange(time.Now(), job.location)
	userIDs, err := job.users.ListIDsWithoutCheckinBetween(dayStart, dayEnd)
	if err != nil {
		log.Printf("reminder job: list users failed: %v", err)
		return
	}

	for _, userID := range userIDs {
		if err := job.notifier.CreateReminder(userID, reminderMessage); err != nil {
			log.Printf("reminder job: notify user %d failed: %v", userID, err)
		}
	}
}
