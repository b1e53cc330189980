package db

import (
	"time"

	"github.com/steadyjournal/steady/internal/models"
	"gorm.io/gorm"
)

type SymptomLogRepository struct {
	database *gorm.DB
}

func NewSymptomLogRepository(database *gorm.DB) *SymptomLogRepository {
	return &SymptomLogRepository{database: database}
}

func (repo *SymptomLogRepository) Create(entry *models.SymptomLog) error {
	return repo.database.Create(entry).Error
}

func (repo *SymptomLogRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, variant string) ([]models.SymptomLog, error) {
	query := repo.database.Model(&models.SymptomLog{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("recorded_at >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("recorded_at < ?", *toEnd)
	}
	if variant != "" {
		query = query.Where("variant = ?", variant)
	}

	logs := make([]models.SymptomLog, 0)
	if err := query.Order("recorded_at ASC, id ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *SymptomLogRepository) FindByIDForUser(logID uint, userID uint) (models.SymptomLog, bool, error) {
	entry := models.SymptomLog{}
	result := repo.database.Where("id = ? AND user_id = ?", logID, userID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.SymptomLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.SymptomLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *SymptomLogRepository) Delete(entry *models.SymptomLog) error {
	return repo.database.Delete(entry).Error
}

func (repo *SymptomLogRepository) DeleteAllForUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.SymptomLog{}).Error
}

type variantCountRow struct {
	Variant string `gorm:"column:variant"`
	Count   int64  `gorm:"column:count"`
}

// CountByVariant aggregates metadata only; payload columns are never read.
func (repo *SymptomLogRepository) CountByVariant() (map[string]int64, error) {
	rows := make([]variantCountRow, 0)
	err := repo.database.Model(&models.SymptomLog{}).
		Select("variant, COUNT(*) AS count").
		Group("variant").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Variant] = row.Count
	}
	return counts, nil
}
