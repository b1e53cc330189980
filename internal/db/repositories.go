package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Checkins      *CheckinRepository
	SymptomLogs   *SymptomLogRepository
	Notifications *NotificationRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Checkins:      NewCheckinRepository(database),
		SymptomLogs:   NewSymptomLogRepository(database),
		Notifications: NewNotificationRepository(database),
	}
}
