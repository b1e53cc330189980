package models

import "time"

// PointsEntry is the award ledger. The (user_id, date) unique index is the
// idempotency key: re-running the award for a day that already has a row is a
// no-op instead of a double award.
type PointsEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_points_user_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_points_user_date"`
	Points    int       `gorm:"not null"`
	Streak    int       `gorm:"not null"`
	CreatedAt time.Time
}
