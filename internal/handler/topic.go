package handler

import (
	"net/http"

	"github.com/itchan-dev/boards/internal/api"
	"github.com/itchan-dev/boards/internal/domain"
	mw "github.com/itchan-dev/boards/internal/middleware"
	"github.com/itchan-dev/boards/internal/utils"
)

func (h *Handler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	boardId, err := parseBoardId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.CreateTopicRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	topic, post, err := h.topic.Create(r.Context(), domain.TopicCreationData{
		Board:   boardId,
		Subject: body.Subject,
		Author:  user.Id,
		Message: body.Message,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.CreateTopicResponse{Topic: topic, Post: post})
}

// GetTopic serves the topic page and counts one view per session.
func (h *Handler) GetTopic(w http.ResponseWriter, r *http.Request) {
	boardId, err := parseBoardId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	topicId, err := parseTopicId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	topic, err := h.topic.View(r.Context(), boardId, topicId, mw.GetSessionFromContext(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.TopicResponse{TopicWithPosts: topic})
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	boardId, err := parseBoardId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	topics, err := h.topic.List(r.Context(), boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if topics == nil {
		topics = []domain.TopicSummary{}
	}
	utils.WriteJSON(w, http.StatusOK, api.TopicListResponse{Topics: topics})
}
