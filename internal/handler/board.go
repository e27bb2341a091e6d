package handler

import (
	"net/http"
	"strconv"

	"github.com/itchan-dev/boards/internal/api"
	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
	"github.com/itchan-dev/boards/internal/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body api.BoardRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.CreateOrUpdate(r.Context(), nil, body.Name, body.Description)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, board)
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseBoardId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.BoardRequest
	if err := utils.DecodeValidate(r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.CreateOrUpdate(r.Context(), &id, body.Name, body.Description)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, board)
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseBoardId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.board.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseBoardId(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Get(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.BoardResponse{BoardSummary: board})
}

// ListBoards returns all boards, or only the one named by ?id=.
func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	var filter *domain.BoardId
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, internal_errors.Validation("invalid id: must be an integer"))
			return
		}
		filter = &id
	}

	boards, err := h.board.List(r.Context(), filter)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, api.NewBoardListResponse(boards))
}
