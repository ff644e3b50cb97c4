package app

import (
	"net/http"

	"github.com/Raimguhinov/alarmlog/internal/alarm"
	"github.com/Raimguhinov/alarmlog/internal/auth"
	"github.com/Raimguhinov/alarmlog/internal/config"
	"github.com/Raimguhinov/alarmlog/internal/delivery/http/handlers"
	mwlogger "github.com/Raimguhinov/alarmlog/internal/delivery/http/middleware/logger"
	"github.com/Raimguhinov/alarmlog/internal/session"
	"github.com/Raimguhinov/alarmlog/internal/user"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func SetupRouter(l *logger.Logger, cfg *config.Config, alarms *alarm.Backend, users *user.Backend, sessions session.Store) http.Handler {
	s := chi.NewRouter()
	s.Use(middleware.RequestID)
	s.Use(middleware.RealIP)
	s.Use(mwlogger.New(l))
	s.Use(middleware.Recoverer)
	s.Use(corsMiddleware(cfg.HTTP.CORS))

	sessionAuth := auth.NewSessionAuth(sessions, cfg.Session.CookieName, cfg.Session.TTL, l)
	handlers.New(alarms, users, sessionAuth, cfg.HTTP.StaticDir, l).Register(s)

	return s
}

func corsMiddleware(c config.CORS) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:     c.AllowedOrigins,
		AllowedMethods:     c.AllowedMethods,
		AllowedHeaders:     c.AllowedHeaders,
		ExposedHeaders:     c.ExposedHeaders,
		AllowCredentials:   c.AllowCredentials,
		OptionsPassthrough: c.OptionsPassthrough,
		Debug:              c.Debug,
	}).Handler
}
