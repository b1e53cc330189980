package models

import "time"

const (
	NotificationKindCheckin  = "checkin"
	NotificationKindReminder = "reminder"
)

type Notification struct {
	ID        string    `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Kind      string    `gorm:"not null"`
	Message   string    `gorm:"not null"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
}
