package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsUniqueConstraintViolation reports whether err is a unique-index conflict.
// The string check covers sqlite errors the driver does not translate.
func IsUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
