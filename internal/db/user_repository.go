package db

import (
	"time"

	"github.com/steadyjournal/steady/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("id = ?", userID).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByEmail(email string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("email = ?", email).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (repo *UserRepository) Count() (int64, error) {
	var count int64
	err := repo.database.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (repo *UserRepository) CountWithActiveStreak() (int64, error) {
	var count int64
	err := repo.database.Model(&models.User{}).Where("current_streak > 0").Count(&count).Error
	return count, err
}

func (repo *UserRepository) ListAdmins() ([]models.User, error) {
	admins := make([]models.User, 0)
	if err := repo.database.Where("role = ?", models.RoleAdmin).Order("id ASC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// UserActivityRow carries per-user metadata for the admin list. Note content
// is deliberately never selected here.
type UserActivityRow struct {
	ID            uint      `gorm:"column:id"`
	Email         string    `gorm:"column:email"`
	DisplayName   string    `gorm:"column:display_name"`
	Role          string    `gorm:"column:role"`
	TotalPoints   int       `gorm:"column:total_points"`
	CurrentStreak int       `gorm:"column:current_streak"`
	CheckinCount  int64     `gorm:"column:checkin_count"`
	SymptomCount  int64     `gorm:"column:symptom_count"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (repo *UserRepository) ListWithActivity() ([]UserActivityRow, error) {
	rows := make([]UserActivityRow, 0)
	err := repo.database.Raw(`
SELECT
  u.id, u.email, u.display_name, u.role, u.total_points, u.current_streak, u.created_at,
  (SELECT COUNT(*) FROM checkins c WHERE c.user_id = u.id) AS checkin_count,
  (SELECT COUNT(*) FROM symptom_logs s WHERE s.user_id = u.id) AS symptom_count
FROM users u
ORDER BY u.id ASC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type userIDRow struct {
	ID uint `gorm:"column:id"`
}

// ListIDsWithoutCheckinBetween feeds the daily reminder job.
func (repo *UserRepository) ListIDsWithoutCheckinBetween(dayStart time.Time, dayEnd time.Time) ([]uint, error) {
	rows := make([]userIDRow, 0)
	err := repo.database.Raw(`
SELECT u.id FROM users u
WHERE NOT EXISTS (
  SELECT 1 FROM checkins c
  WHERE c.user_id = u.id AND c.date >= ? AND c.date < ?
)
ORDER BY u.id ASC`, dayStart, dayEnd).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

// DeleteAccount removes the user and every owned row in one transaction.
func (repo *UserRepository) DeleteAccount(userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Checkin{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PointsEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.SymptomLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
