package api

import (
	"github.com/itchan-dev/boards/internal/domain"
)

// Request DTOs

type BoardRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Response DTOs

type BoardResponse struct {
	domain.BoardSummary
}

type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
}

func NewBoardListResponse(boards []domain.BoardSummary) BoardListResponse {
	resp := BoardListResponse{Boards: make([]BoardResponse, len(boards))}
	for i, b := range boards {
		resp.Boards[i] = BoardResponse{BoardSummary: b}
	}
	return resp
}
