package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Raimguhinov/alarmlog/internal/domain"
	"github.com/Raimguhinov/alarmlog/internal/session"
	"github.com/Raimguhinov/alarmlog/pkg/logger"
)

const (
	DefaultCookieName = "token"
	LoginPath         = "/login"
)

var _ AuthProvider = (*SessionAuth)(nil)

// SessionAuth authorizes requests by the session token cookie.
type SessionAuth struct {
	store      session.Store
	cookieName string
	ttl        time.Duration
	logger     *logger.Logger
}

func NewSessionAuth(store session.Store, cookieName string, ttl time.Duration, l *logger.Logger) *SessionAuth {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &SessionAuth{
		store:      store,
		cookieName: cookieName,
		ttl:        ttl,
		logger:     l.With(slog.String("component", "auth")),
	}
}

// Middleware redirects to the login page when the request carries no live session.
func (s *SessionAuth) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := s.Lookup(r)
			if !ok {
				http.Redirect(w, r, LoginPath, http.StatusTemporaryRedirect)
				return
			}
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), authCtx)))
		})
	}
}

// Lookup resolves the request's token cookie against the session store.
func (s *SessionAuth) Lookup(r *http.Request) (*AuthContext, bool) {
	c, err := r.Cookie(s.cookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}

	uid, err := s.store.Get(r.Context(), c.Value)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			s.logger.Error("auth.Lookup", logger.Err(err))
		}
		return nil, false
	}
	return &AuthContext{AuthMethod: "session", UserID: uid, Token: c.Value}, true
}

// Login mints a token for userID, stores it and sets the cookie.
func (s *SessionAuth) Login(ctx context.Context, w http.ResponseWriter, userID int64, name, hashPwd string) error {
	token := session.NewToken(name, hashPwd, time.Now())
	if err := s.store.Put(ctx, token, userID); err != nil {
		return err
	}

	c := &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if s.ttl > 0 {
		c.MaxAge = int(s.ttl.Seconds())
	}
	http.SetCookie(w, c)
	return nil
}

// Logout drops the request's session, if any, and expires the cookie.
func (s *SessionAuth) Logout(w http.ResponseWriter, r *http.Request) error {
	c, err := r.Cookie(s.cookieName)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:   s.cookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return s.store.Delete(r.Context(), c.Value)
}

// PrivilegeSource resolves a user's privilege.
type PrivilegeSource interface {
	GetPrivilege(ctx context.Context, id int64) (domain.Privilege, error)
}

// RequirePrivilege rejects authenticated requests whose user lacks privilege p.
// It must run after Middleware.
func RequirePrivilege(users PrivilegeSource, p domain.Privilege) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authCtx, ok := FromContext(r.Context())
			if !ok {
				http.Redirect(w, r, LoginPath, http.StatusTemporaryRedirect)
				return
			}

			got, err := users.GetPrivilege(r.Context(), authCtx.UserID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if err != nil || got != p {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
