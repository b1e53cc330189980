package db

import (
	"errors"
	"time"

	"github.com/steadyjournal/steady/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCheckinDateTaken  = errors.New("checkin date taken")
	ErrAwardNotPersisted = errors.New("points award not persisted")
)

type CheckinRepository struct {
	database *gorm.DB
}

func NewCheckinRepository(database *gorm.DB) *CheckinRepository {
	return &CheckinRepository{database: database}
}

func (repo *CheckinRepository) ListByUser(userID uint) ([]models.Checkin, error) {
	checkins := make([]models.Checkin, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}

func (repo *CheckinRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.Checkin, error) {
	query := repo.database.Model(&models.Checkin{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	checkins := make([]models.Checkin, 0)
	if err := query.Order("date ASC, id ASC").Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}

func (repo *CheckinRepository) ListRecentDates(userID uint, limit int) ([]time.Time, error) {
	checkins := make([]models.Checkin, 0)
	query := repo.database.
		Select("date").
		Where("user_id = ?", userID).
		Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&checkins).Error; err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(checkins))
	for _, checkin := range checkins {
		dates = append(dates, checkin.Date)
	}
	return dates, nil
}

func (repo *CheckinRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.Checkin, bool, error) {
	checkin := models.Checkin{}
	result := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&checkin)
	if result.Error != nil {
		return models.Checkin{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Checkin{}, false, nil
	}
	return checkin, true, nil
}

// CreateWithAward writes the check-in, its points-ledger row, and the cached
// user counters in a single transaction, so a crash never leaves a check-in
// without its award. The ledger insert ignores an existing (user_id, date) row,
// which makes the award step a no-op on retry.
func (repo *CheckinRepository) CreateWithAward(checkin *models.Checkin, entry *models.PointsEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(checkin).Error; err != nil {
			if IsUniqueConstraintViolation(err) {
				return ErrCheckinDateTaken
			}
			return err
		}
		return awardInTx(tx, entry)
	})
}

// AwardForDay persists a points award keyed by (user_id, date) on its own,
// used to reconcile a check-in whose award step previously failed.
func (repo *CheckinRepository) AwardForDay(entry *models.PointsEntry) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		return awardInTx(tx, entry)
	})
}

func awardInTx(tx *gorm.DB, entry *models.PointsEntry) error {
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Already awarded for this day; leave the counters untouched.
		return nil
	}
	return tx.Model(&models.User{}).
		Where("id = ?", entry.UserID).
		Updates(map[string]any{
			"total_points":   gorm.Expr("total_points + ?", entry.Points),
			"current_streak": entry.Streak,
		}).Error
}

func (repo *CheckinRepository) Save(checkin *models.Checkin) error {
	return repo.database.Save(checkin).Error
}

// DeleteDayWithLedger removes the day's check-in together with its ledger row
// and subtracts the awarded points from the cached total.
func (repo *CheckinRepository) DeleteDayWithLedger(userID uint, dayStart time.Time, dayEnd time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		entry := models.PointsEntry{}
		result := tx.
			Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
			Limit(1).
			Find(&entry)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			if err := tx.Delete(&models.PointsEntry{}, entry.ID).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).
				Where("id = ?", userID).
				Update("total_points", gorm.Expr("MAX(total_points - ?, 0)", entry.Points)).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
			Delete(&models.Checkin{}).Error
	})
}

// DeleteAllForUser clears every check-in and ledger row for the user and resets
// the cached counters, atomically.
func (repo *CheckinRepository) DeleteAllForUser(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Checkin{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PointsEntry{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{"total_points": 0, "current_streak": 0}).Error
	})
}

func (repo *CheckinRepository) UpdateCachedStreak(userID uint, streak int) error {
	return repo.database.Model(&models.User{}).
		Where("id = ?", userID).
		Update("current_streak", streak).Error
}

func (repo *CheckinRepository) CountAll() (int64, error) {
	var count int64
	err := repo.database.Model(&models.Checkin{}).Count(&count).Error
	return count, err
}

func (repo *CheckinRepository) CountSince(dayStart time.Time) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Checkin{}).Where("date >= ?", dayStart).Count(&count).Error
	return count, err
}

func (repo *CheckinRepository) AverageMoodSince(dayStart time.Time) (float64, error) {
	var average *float64
	err := repo.database.Model(&models.Checkin{}).
		Select("AVG(mood_score)").
		Where("date >= ?", dayStart).
		Scan(&average).Error
	if err != nil || average == nil {
		return 0, err
	}
	return *average, nil
}
