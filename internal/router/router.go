package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/boards/internal/setup"
	mw "github.com/itchan-dev/boards/internal/middleware"
	"github.com/itchan-dev/boards/internal/middleware/metrics"
	rl "github.com/itchan-dev/boards/internal/middleware/ratelimiter"
)

const defaultWritesPerMinute = 10

// New builds the chi router with all routes.
// Each rate limiter is shared by every route it wraps.
func New(deps *setup.Dependencies) *chi.Mux {
	cfg := deps.Config
	h := deps.Handler
	authMw := deps.AuthMiddleware

	writes := cfg.Public.WritesPerMinute
	if writes == 0 {
		writes = defaultWritesPerMinute
	}
	writeLimiter := rl.PerMinute(writes)
	authLimiter := rl.PerMinute(writes)
	deps.Limiters = append(deps.Limiters, writeLimiter, authLimiter)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(cfg.Public.SecureCookies))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.Session(mw.SessionConfig{TTL: cfg.SessionTTL(), SecureCookies: cfg.Public.SecureCookies}))

		r.Route("/auth", func(r chi.Router) {
			r.With(mw.RateLimit(authLimiter, mw.GetIP)).Post("/signup", h.Signup)
			r.With(mw.RateLimit(authLimiter, mw.GetIP)).Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMw.AdminOnly())
			r.Post("/boards", h.CreateBoard)
			r.Put("/boards/{board}", h.UpdateBoard)
			r.Delete("/boards/{board}", h.DeleteBoard)
		})

		// Reads are public; the user is attached when a token is present.
		r.Group(func(r chi.Router) {
			r.Use(authMw.OptionalAuth())
			r.Get("/boards", h.ListBoards)
			r.Get("/boards/{board}", h.GetBoard)
			r.Get("/boards/{board}/topics", h.ListTopics)
			r.Get("/boards/{board}/topics/{topic}", h.GetTopic)
			r.Get("/posts/{post}", h.GetPost)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Use(mw.RateLimit(writeLimiter, mw.GetUserIDFromContext))
			r.Post("/boards/{board}/topics", h.CreateTopic)
			r.Post("/boards/{board}/topics/{topic}/posts", h.CreateReply)
			r.Put("/posts/{post}", h.EditPost)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not found", http.StatusNotFound)
	})

	return r
}
