package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/steadyjournal/steady/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrRegisterFailed     = errors.New("register failed")
	ErrPasswordMismatch   = errors.New("password mismatch")
)

type AuthUserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (models.User, bool, error)
	FindByID(userID uint) (models.User, bool, error)
	UpdateByID(userID uint, updates map[string]any) error
	DeleteAccount(userID uint) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(emailRaw string, passwordRaw string, displayName string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	_, exists, err := service.users.FindByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(displayName),
		Role:         models.RoleUser,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}
	return user, nil
}

func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user, found, err := service.users.FindByEmail(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrUserNotFound, err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrPasswordMismatch
	}
	newPassword = strings.TrimSpace(newPassword)
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRegisterFailed, err)
	}
	return service.users.UpdateByID(userID, map[string]any{"password_hash": string(hash)})
}

func (service *AuthService) DeleteAccount(userID uint) error {
	return service.users.DeleteAccount(userID)
}
