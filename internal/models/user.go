package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID            uint      `gorm:"primaryKey"`
	Email         string    `gorm:"uniqueIndex;not null"`
	PasswordHash  string    `gorm:"not null"`
	DisplayName   string    `gorm:"not null;default:''"`
	Role          string    `gorm:"not null;default:user"`
	TotalPoints   int       `gorm:"not null;default:0"`
	CurrentStreak int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time
}

func (user *User) IsAdmin() bool {
	return user != nil && user.Role == RoleAdmin
}
