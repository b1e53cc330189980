package models

import "time"

const (
	VariantDizziness  = "dizziness"
	VariantLifestyle  = "lifestyle"
	VariantMedication = "medication"
	VariantVoice      = "voice"
)

func KnownVariants() []string {
	return []string{VariantDizziness, VariantLifestyle, VariantMedication, VariantVoice}
}

// SymptomLog is polymorphic over Variant; only the columns belonging to the
// variant are populated, the rest stay at their zero values.
type SymptomLog struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	Variant     string    `gorm:"not null;index"`
	RecordedAt  time.Time `gorm:"not null;index"`
	Symptoms    []string  `gorm:"serializer:json"`
	DietTags    []string  `gorm:"serializer:json"`
	SleepLevel  *int
	StressLevel *int
	Medications []string `gorm:"serializer:json"`
	Note        string
	CreatedAt   time.Time
}
