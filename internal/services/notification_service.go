package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/steadyjournal/steady/internal/models"
)

var (
	ErrNotificationLoadFailed  = errors.New("load notifications failed")
	ErrNotificationWriteFailed = errors.New("write notification failed")
	ErrNotificationNotFound    = errors.New("notification not found")
)

type NotificationStore interface {
	Create(notification *models.Notification) error
	CreateBatch(notifications []models.Notification) error
	ListByUser(userID uint, unreadOnly bool) ([]models.Notification, error)
	MarkRead(notificationID string, userID uint) (bool, error)
}

type NotificationAdminReader interface {
	ListAdmins() ([]models.User, error)
}

type NotificationService struct {
	notifications NotificationStore
	users         NotificationAdminReader
}

func NewNotificationService(notifications NotificationStore, users NotificationAdminReader) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
	}
}

// DispatchCheckinCreated fans the event out to administrators without blocking
// the caller. A failed fan-out is logged and dropped — it must never roll back
// or delay the check-in that triggered it.
func (service *NotificationService) DispatchCheckinCreated(user models.User, checkin models.Checkin, streak int) {
	go func() {
		if err := service.NotifyCheckinCreated(user, checkin, streak); err != nil {
			log.Printf("checkin notification fan-out failed: %v", err)
		}
	}()
}

func (service *NotificationService) NotifyCheckinCreated(user models.User, checkin models.Checkin, streak int) error {
	admins, err := service.users.ListAdmins()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationWriteFailed, err)
	}
	if len(admins) == 0 {
		return nil
	}

	message := fmt.Sprintf(
		"%s checked in on %s (mood %d, streak %d)",
		displayNameOrEmail(user),
		checkin.Date.Format(dayKeyLayout),
		checkin.MoodScore,
		streak,
	)

	notifications := make([]models.Notification, 0, len(admins))
	now := time.Now()
	for _, admin := range admins {
		notifications = append(notifications, models.Notification{
			ID:        uuid.NewString(),
			UserID:    admin.ID,
			Kind:      models.NotificationKindCheckin,
			Message:   message,
			CreatedAt: now,
		})
	}
	if err := service.notifications.CreateBatch(notifications); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationWriteFailed, err)
	}
	return nil
}

func (service *NotificationService) CreateReminder(userID uint, message string) error {
	notification := models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      models.NotificationKindReminder,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := service.notifications.Create(&notification); err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationWriteFailed, err)
	}
	return nil
}

func (service *NotificationService) FetchForUser(userID uint, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := service.notifications.ListByUser(userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotificationLoadFailed, err)
	}
	return notifications, nil
}

func (service *NotificationService) MarkRead(notificationID string, userID uint) error {
	updated, err := service.notifications.MarkRead(notificationID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotificationWriteFailed, err)
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}

func displayNameOrEmail(user models.User) string {
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Email
}
