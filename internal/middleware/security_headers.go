package middleware

import (
	"net/http"
	"strings"
)

// apiHeaders are set on every response of the JSON API.
var apiHeaders = map[string]string{
	"X-Content-Type-Options":       "nosniff",
	"X-Frame-Options":              "DENY",
	"Referrer-Policy":              "no-referrer",
	"Content-Security-Policy":      "default-src 'none'; frame-ancestors 'none'",
	"Cross-Origin-Resource-Policy": "same-site",
}

// SecurityHeaders sets apiHeaders on every response. Responses to requests
// carrying credentials are no-store. HSTS is only sent when isHTTPS is set.
func SecurityHeaders(isHTTPS bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()
			for k, v := range apiHeaders {
				headers.Set(k, v)
			}
			if hasCredentials(r) {
				headers.Set("Cache-Control", "no-store")
			}
			if isHTTPS {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}

func hasCredentials(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		return true
	}
	_, err := r.Cookie(AccessTokenCookie)
	return err == nil
}
