package api

import (
	"github.com/itchan-dev/boards/internal/domain"
)

// Request DTOs

// PostRequest is used both for replies and edits.
type PostRequest struct {
	Message string `json:"message" validate:"required"`
}

// Response DTOs

type PostResponse struct {
	domain.Post
}
