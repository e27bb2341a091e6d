package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/itchan-dev/boards/internal/domain"
	"github.com/itchan-dev/boards/internal/logger"
)

const SessionCookie = "session_id"

type SessionConfig struct {
	TTL           time.Duration
	SecureCookies bool
}

// Session makes sure every request carries a session id, issuing a cookie
// for new visitors. Malformed ids are replaced.
func Session(cfg SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var session string
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					session = cookie.Value
				}
			}

			if session == "" {
				id, err := uuid.NewRandom()
				if err != nil {
					logger.Log.Error("failed to generate session id", "error", err)
					next.ServeHTTP(w, r)
					return
				}
				session = id.String()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    session,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.SecureCookies,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int(cfg.TTL.Seconds()),
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey, domain.SessionId(session))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext returns the request's session id, empty if none.
func GetSessionFromContext(r *http.Request) domain.SessionId {
	session, _ := r.Context().Value(sessionKey).(domain.SessionId)
	return session
}

func WithSession(ctx context.Context, session domain.SessionId) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}
