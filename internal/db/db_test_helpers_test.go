package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/steadyjournal/steady/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "steady_test.db"))
	require.NoError(t, err)
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleUser,
	}
	require.NoError(t, NewUserRepository(database).Create(&user))
	return user
}

func day(value string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}
