package models

import "time"

const (
	MinMoodScore = 1
	MaxMoodScore = 5
)

type Checkin struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_checkin_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_checkin_user_date"`
	MoodScore int       `gorm:"not null"`
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
