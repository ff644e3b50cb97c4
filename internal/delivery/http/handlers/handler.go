// Package handlers exposes alarms, users and sessions over HTTP.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Raimguhinov/alarmlog/internal/alarm"
	"github.com/Raimguhinov/alarmlog/internal/auth"
	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/internal/user"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	alarms    *alarm.Backend
	users     *user.Backend
	auth      *auth.SessionAuth
	staticDir string
	logger    *logger.Logger
}

func New(alarms *alarm.Backend, users *user.Backend, sessionAuth *auth.SessionAuth, staticDir string, l *logger.Logger) *Handler {
	return &Handler{
		alarms:    alarms,
		users:     users,
		auth:      sessionAuth,
		staticDir: staticDir,
		logger:    l.With(slog.String("component", "http/handlers")),
	}
}

// Register mounts every route on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/alarm/", h.addAlarm)
	r.Get("/favicon.ico", h.favicon)
	r.Get(auth.LoginPath, h.loginPage)
	r.Post(auth.LoginPath, h.login)
	r.Get("/logout", h.logout)
	r.Handle("/assets/*", h.assets())

	r.Group(func(r chi.Router) {
		r.Use(h.auth.Middleware())

		r.Get("/", h.index)
		r.Get("/alarm/", h.listAlarms)
		r.Delete("/alarm/", h.deleteAlarms)
		r.Post("/alarm/clear/", h.clearAlarms)
		r.Get("/user_info/", h.userInfo)

		r.Route("/user", func(r chi.Router) {
			r.Use(auth.RequirePrivilege(h.users, domain.PrivilegeAdmin))

			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Delete("/{id}", h.deleteUser)
			r.Get("/{id}/privilege", h.getPrivilege)
			r.Put("/{id}/privilege", h.setPrivilege)
		})
	})
}

func (h *Handler) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, auth.LoginPath, http.StatusTemporaryRedirect)
}
