package handler

import (
	"net/http"

	"github.com/itchan-dev/boards/internal/api"
	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
	mw "github.com/itchan-dev/boards/internal/middleware"
	"github.com/itchan-dev/boards/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
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
	topicId, err := parseTopicId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.PostRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Reply(r.Context(), domain.PostCreationData{
		Board:   boardId,
		Topic:   topicId,
		Author:  user.Id,
		Message: body.Message,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, api.PostResponse{Post: post})
}

func (h *Handler) EditPost(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	postId, err := parsePostId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.PostRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	existing, err := h.post.Get(r.Context(), postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if !canEdit(user, existing) {
		utils.WriteErrorAndStatusCode(w, internal_errors.Forbidden("Only the author can edit this post"))
		return
	}

	post, err := h.post.Edit(r.Context(), domain.PostEditData{Id: postId, Editor: *user, Message: body.Message})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.PostResponse{Post: post})
}

func canEdit(user *domain.User, post domain.Post) bool {
	return user.Admin || post.CreatedBy == user.Id
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postId, err := parsePostId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.post.Get(r.Context(), postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.PostResponse{Post: post})
}
