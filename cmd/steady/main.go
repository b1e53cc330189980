package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/steadyjournal/steady/internal/api"
	"github.com/steadyjournal/steady/internal/config"
	"github.com/steadyjournal/steady/internal/db"
	"github.com/steadyjournal/steady/internal/security"
	"github.com/steadyjournal/steady/internal/services"
)

const secretKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	secretKey := cfg.SecretKey
	if secretKey == "change_me_in_production" {
		generated, err := security.RandomString(48, secretKeyAlphabet)
		if err != nil {
			log.Fatalf("generate session key failed: %v", err)
		}
		log.Print("SECRET_KEY not configured, using an ephemeral key; sessions reset on restart")
		secretKey = generated
	}

	location := services.DisplayLocation(cfg.DisplayUTCOffset)

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repos := db.NewRepositories(database)

	handler := api.NewHandler(repos, secretKey, location, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Steady",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	notifier := services.NewNotificationService(repos.Notifications, repos.Users)
	reminders := services.NewReminderJob(repos.Users, notifier, location, cfg.ReminderHour)
	if err := reminders.Start(); err != nil {
		log.Fatalf("reminder job start failed: %v", err)
	}
	defer reminders.Stop()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		reminders.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Steady listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
