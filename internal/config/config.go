package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string `mapstructure:"PORT"`
	DBPath           string `mapstructure:"DB_PATH"`
	SecretKey        string `mapstructure:"SECRET_KEY"`
	CookieSecure     bool   `mapstructure:"COOKIE_SECURE"`
	DisplayUTCOffset int    `mapstructure:"DISPLAY_UTC_OFFSET_HOURS"`
	ReminderHour     int    `mapstructure:"REMINDER_HOUR"`
}

// Load reads configuration from the environment, with an optional .env file
// as fallback for local development.
func Load() (Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PATH", "data/steady.db")
	viper.SetDefault("SECRET_KEY", "change_me_in_production")
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("DISPLAY_UTC_OFFSET_HOURS", 8)
	viper.SetDefault("REMINDER_HOUR", 20)

	for _, key := range []string{"PORT", "DB_PATH", "SECRET_KEY", "COOKIE_SECURE", "DISPLAY_UTC_OFFSET_HOURS", "REMINDER_HOUR"} {
		if err := viper.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if cfg.SecretKey == "" {
		return errors.New("SECRET_KEY must not be empty")
	}
	if cfg.DisplayUTCOffset < -12 || cfg.DisplayUTCOffset > 14 {
		return fmt.Errorf("DISPLAY_UTC_OFFSET_HOURS out of range: %d", cfg.DisplayUTCOffset)
	}
	if cfg.ReminderHour < 0 || cfg.ReminderHour > 23 {
		return fmt.Errorf("REMINDER_HOUR out of range: %d", cfg.ReminderHour)
	}
	return nil
}
