package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/steadyjournal/steady/internal/db"
	"github.com/steadyjournal/steady/internal/services"
)

type Handler struct {
	users         *db.UserRepository
	auth          *services.AuthService
	checkins      *services.CheckinService
	symptoms      *services.SymptomService
	calendar      *services.CalendarService
	stats         *services.StatsService
	export        *services.ExportService
	notifications *services.NotificationService

	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	validate     *validator.Validate

	// now is the clock source; overridable in tests so date comparisons can
	// be pinned.
	now func() time.Time
}

func NewHandler(repos *db.Repositories, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	return &Handler{
		users:         repos.Users,
		auth:          services.NewAuthService(repos.Users),
		checkins:      services.NewCheckinService(repos.Checkins, repos.Users),
		symptoms:      services.NewSymptomService(repos.SymptomLogs),
		calendar:      services.NewCalendarService(repos.Checkins, repos.SymptomLogs),
		stats:         services.NewStatsService(repos.Users, repos.Checkins, repos.SymptomLogs),
		export:        services.NewExportService(repos.Checkins, repos.SymptomLogs),
		notifications: services.NewNotificationService(repos.Notifications, repos.Users),
		secretKey:     []byte(secretKey),
		location:      location,
		cookieSecure:  cookieSecure,
		validate:      validator.New(),
		now:           time.Now,
	}
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
