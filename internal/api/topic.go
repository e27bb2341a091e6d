package api

import (
	"github.com/itchan-dev/boards/internal/domain"
)

// Request DTOs

type CreateTopicRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Response DTOs

type CreateTopicResponse struct {
	Topic domain.Topic `json:"topic"`
	Post  domain.Post  `json:"post"`
}

type TopicResponse struct {
	domain.TopicWithPosts
}

type TopicListResponse struct {
	Topics []domain.TopicSummary `json:"topics"`
}
