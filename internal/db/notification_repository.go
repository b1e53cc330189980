package db

import (
	"github.com/steadyjournal/steady/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

func (repo *NotificationRepository) CreateBatch(notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return repo.database.Create(&notifications).Error
}

func (repo *NotificationRepository) ListByUser(userID uint, unreadOnly bool) ([]models.Notification, error) {
	query := repo.database.Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	notifications := make([]models.Notification, 0)
	if err := query.Order("created_at DESC, id DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) MarkRead(notificationID string, userID uint) (bool, error) {
	result := repo.database.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
