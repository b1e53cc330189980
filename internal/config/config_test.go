package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/steady.db", cfg.DBPath)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 8, cfg.DisplayUTCOffset)
	assert.Equal(t, 20, cfg.ReminderHour)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DISPLAY_UTC_OFFSET_HOURS", "-5")
	t.Setenv("REMINDER_HOUR", "7")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, -5, cfg.DisplayUTCOffset)
	assert.Equal(t, 7, cfg.ReminderHour)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadRejectsOutOfRangeValues(t *testing.T) {
	t.Setenv("REMINDER_HOUR", "99")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("REMINDER_HOUR", "20")
	t.Setenv("DISPLAY_UTC_OFFSET_HOURS", "40")
	_, err = Load()
	assert.Error(t, err)
}
