package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	internal_errors "github.com/itchan-dev/boards/internal/errors"
	"github.com/itchan-dev/boards/internal/logger"
	"github.com/itchan-dev/boards/internal/middleware/ratelimiter"
	"github.com/itchan-dev/boards/internal/utils"
)

// RateLimit spends one token of the caller's bucket per request. Refused
// requests get 429 with Retry-After in whole seconds.
func RateLimit(rl *ratelimiter.Limiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := GetUserFromContext(r); user != nil && user.Admin {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			ok, wait := rl.Reserve(identity)
			if !ok {
				seconds := int(math.Ceil(wait.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				logger.Log.Debug("rate limit exceeded", "identity", identity, "path", r.URL.Path, "retry_after", seconds)
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				utils.WriteErrorAndStatusCode(w, internal_errors.RateLimited("Rate limit exceeded, try again later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetUserIDFromContext keys writes by account. It works only behind NeedAuth.
func GetUserIDFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", internal_errors.Unauthorized("Please sign-in")
	}
	return fmt.Sprintf("user_%d", user.Id), nil
}

// GetIP keys signup and login by client address.
func GetIP(r *http.Request) (string, error) {
	ip, err := utils.GetIP(r)
	if err != nil {
		return "", internal_errors.Validation(err.Error())
	}
	return "ip_" + ip, nil
}
