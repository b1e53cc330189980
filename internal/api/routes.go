package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	checkins := api.Group("/checkins", handler.AuthRequired)
	checkins.Get("", handler.GetCheckins)
	checkins.Post("", handler.CreateCheckin)
	checkins.Delete("", handler.DeleteAllCheckins)
	checkins.Get("/:date", handler.GetCheckin)
	checkins.Post("/:date/retry-award", handler.RetryCheckinAward)
	checkins.Delete("/:date", handler.DeleteCheckin)

	api.Get("/streak", handler.AuthRequired, handler.GetStreak)

	symptoms := api.Group("/symptoms", handler.AuthRequired)
	symptoms.Get("", handler.GetSymptomLogs)
	symptoms.Post("", handler.CreateSymptomLog)
	symptoms.Delete("/:id", handler.DeleteSymptomLog)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("/:year/:month", handler.GetCalendarMonth)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.GetExportSummary)
	export.Get("/json", handler.GetExportJSON)
	export.Get("/csv", handler.GetExportCSV)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.GetNotifications)
	notifications.Post("/:id/read", handler.MarkNotificationRead)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/stats", handler.GetAdminStats)
	admin.Get("/users", handler.GetAdminUsers)
	admin.Patch("/users/:userID/checkins/:date", handler.CorrectCheckin)
}
