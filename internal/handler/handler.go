package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/boards/internal/config"
	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
	"github.com/itchan-dev/boards/internal/service"
)

type Handler struct {
	auth   service.AuthService
	board  service.BoardService
	topic  service.TopicService
	post   service.PostService
	health []HealthChecker
	cfg    *config.Config
}

func New(auth service.AuthService, board service.BoardService, topic service.TopicService, post service.PostService, cfg *config.Config, health ...HealthChecker) *Handler {
	return &Handler{
		auth:   auth,
		board:  board,
		topic:  topic,
		post:   post,
		health: health,
		cfg:    cfg,
	}
}

// parseIdParam reads a positive integer path parameter.
func parseIdParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, internal_errors.Validation(fmt.Sprintf("invalid %s id: must be a positive integer", name))
	}
	return id, nil
}

func parseBoardId(r *http.Request) (domain.BoardId, error) {
	return parseIdParam(r, "board")
}

func parseTopicId(r *http.Request) (domain.TopicId, error) {
	return parseIdParam(r, "topic")
}

func parsePostId(r *http.Request) (domain.PostId, error) {
	return parseIdParam(r, "post")
}
