package setup

import (
	"context"
	"errors"

	"github.com/itchan-dev/boards/internal/config"
	"github.com/itchan-dev/boards/internal/handler"
	"github.com/itchan-dev/boards/internal/jwt"
	"github.com/itchan-dev/boards/internal/logger"
	"github.com/itchan-dev/boards/internal/markdown"
	mw "github.com/itchan-dev/boards/internal/middleware"
	"github.com/itchan-dev/boards/internal/middleware/ratelimiter"
	"github.com/itchan-dev/boards/internal/service"
	"github.com/itchan-dev/boards/internal/storage/pg"
	"github.com/itchan-dev/boards/internal/storage/redis"
)

// Dependencies holds everything the server needs, built once at startup.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Views          *redis.ViewStore
	Jwt            jwt.JwtService
	Auth           service.AuthService
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	// Limiters are filled by the router; serve sweeps them.
	Limiters []*ratelimiter.Limiter
}

// SetupDependencies connects to postgres and redis, applies the schema and
// wires services into the handler.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := storage.Migrate(ctx); err != nil {
		storage.Cleanup()
		return nil, err
	}

	views, err := redis.New(ctx, cfg)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	renderer := markdown.New()

	auth := service.NewAuth(storage, jwtService)
	board := service.NewBoard(storage, renderer)
	topic := service.NewTopic(storage, views, renderer)
	post := service.NewPost(storage, renderer)

	h := handler.New(auth, board, topic, post, cfg, storage, views)

	logger.Log.Info("dependencies initialized")
	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Views:          views,
		Jwt:            jwtService,
		Auth:           auth,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(jwtService),
	}, nil
}

// Close releases database and redis connections.
func (d *Dependencies) Close() error {
	return errors.Join(d.Storage.Cleanup(), d.Views.Close())
}
