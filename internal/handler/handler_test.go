package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/boards/internal/config"
	"github.com/itchan-dev/boards/internal/domain"
	mw "github.com/itchan-dev/boards/internal/middleware"
)

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{JwtTTL: 3600, SessionTTL: 3600}}
}

// newTestRouter mounts h on the same paths as the real router, without auth.
// Requests carrying a user or a session put them in the context directly.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/v1/auth/signup", h.Signup)
	r.Post("/v1/auth/login", h.Login)
	r.Post("/v1/auth/logout", h.Logout)
	r.Get("/v1/boards", h.ListBoards)
	r.Get("/v1/boards/{board}", h.GetBoard)
	r.Post("/v1/admin/boards", h.CreateBoard)
	r.Put("/v1/admin/boards/{board}", h.UpdateBoard)
	r.Delete("/v1/admin/boards/{board}", h.DeleteBoard)
	r.Get("/v1/boards/{board}/topics", h.ListTopics)
	r.Post("/v1/boards/{board}/topics", h.CreateTopic)
	r.Get("/v1/boards/{board}/topics/{topic}", h.GetTopic)
	r.Post("/v1/boards/{board}/topics/{topic}/posts", h.CreateReply)
	r.Get("/v1/posts/{post}", h.GetPost)
	r.Put("/v1/posts/{post}", h.EditPost)
	r.Get("/health", h.Health)
	return r
}

func createRequest(t *testing.T, method, url string, body []byte, user *domain.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(mw.WithUser(req.Context(), user))
	}
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	newTestRouter(h).ServeHTTP(rr, req)
	return rr
}
