package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/itchan-dev/boards/internal/domain"
	jwt_internal "github.com/itchan-dev/boards/internal/jwt"
	"github.com/itchan-dev/boards/internal/utils"
)

const AccessTokenCookie = "accessToken"

// Key to store the user in the request context
type key int

const (
	userKey key = iota
	sessionKey
)

var errNoToken = errors.New("no token")

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

// OptionalAuth populates the user if the token is valid and passes through otherwise.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, err := a.extractUser(r); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, &user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractUser reads the token from the cookie first, then the Authorization header.
func (a *Auth) extractUser(r *http.Request) (domain.User, error) {
	var tokenString string
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		tokenString = cookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}
	if tokenString == "" {
		return domain.User{}, errNoToken
	}
	return a.jwtService.DecodeToken(tokenString)
}

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if errors.Is(err, errNoToken) {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			if adminOnly && !user.Admin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the authenticated user or nil.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser attaches user to ctx the same way the auth middleware does.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
