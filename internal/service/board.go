package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/boards/internal/domain"
)

type BoardService interface {
	CreateOrUpdate(ctx context.Context, id *domain.BoardId, name domain.BoardName, description domain.BoardDescription) (domain.Board, error)
	Get(ctx context.Context, id domain.BoardId) (domain.BoardSummary, error)
	List(ctx context.Context, filter *domain.BoardId) ([]domain.BoardSummary, error)
	Delete(ctx context.Context, id domain.BoardId) error
	PostCount(ctx context.Context, id domain.BoardId) (int, error)
	LastPost(ctx context.Context, id domain.BoardId) (*domain.Post, error)
}

type Board struct {
	storage   BoardStorage
	validator BoardValidator
	renderer  Renderer
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, creationData domain.BoardCreationData) (domain.Board, error)
	UpdateBoard(ctx context.Context, updateData domain.BoardUpdateData) (domain.Board, error)
	GetBoard(ctx context.Context, id domain.BoardId) (domain.Board, error)
	ListBoards(ctx context.Context, filter *domain.BoardId) ([]domain.BoardSummary, error)
	DeleteBoard(ctx context.Context, id domain.BoardId) error
	TopicCount(ctx context.Context, id domain.BoardId) (int, error)
	PostCount(ctx context.Context, id domain.BoardId) (int, error)
	LastPost(ctx context.Context, id domain.BoardId) (*domain.Post, error)
}

// Renderer turns a post's markdown message into HTML for responses.
type Renderer interface {
	RenderPost(post *domain.Post)
}

func NewBoard(storage BoardStorage, renderer Renderer) *Board {
	return &Board{storage: storage, renderer: renderer}
}

// CreateOrUpdate creates a board when id is nil, otherwise updates it.
func (b *Board) CreateOrUpdate(ctx context.Context, id *domain.BoardId, name domain.BoardName, description domain.BoardDescription) (domain.Board, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if err := b.validator.Name(name); err != nil {
		return domain.Board{}, err
	}
	if err := b.validator.Description(description); err != nil {
		return domain.Board{}, err
	}

	if id == nil {
		return b.storage.CreateBoard(ctx, domain.BoardCreationData{Name: name, Description: description})
	}
	return b.storage.UpdateBoard(ctx, domain.BoardUpdateData{Id: *id, Name: name, Description: description})
}

func (b *Board) Get(ctx context.Context, id domain.BoardId) (domain.BoardSummary, error) {
	board, err := b.storage.GetBoard(ctx, id)
	if err != nil {
		return domain.BoardSummary{}, err
	}
	summary := domain.BoardSummary{Board: board}
	if summary.TopicCount, err = b.storage.TopicCount(ctx, id); err != nil {
		return domain.BoardSummary{}, err
	}
	if summary.PostCount, err = b.PostCount(ctx, id); err != nil {
		return domain.BoardSummary{}, err
	}
	if summary.LastPost, err = b.LastPost(ctx, id); err != nil {
		return domain.BoardSummary{}, err
	}
	return summary, nil
}

func (b *Board) List(ctx context.Context, filter *domain.BoardId) ([]domain.BoardSummary, error) {
	boards, err := b.storage.ListBoards(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range boards {
		if boards[i].LastPost != nil {
			b.renderer.RenderPost(boards[i].LastPost)
		}
	}
	return boards, nil
}

func (b *Board) Delete(ctx context.Context, id domain.BoardId) error {
	return b.storage.DeleteBoard(ctx, id)
}

func (b *Board) PostCount(ctx context.Context, id domain.BoardId) (int, error) {
	return b.storage.PostCount(ctx, id)
}

func (b *Board) LastPost(ctx context.Context, id domain.BoardId) (*domain.Post, error) {
	post, err := b.storage.LastPost(ctx, id)
	if err != nil || post == nil {
		return nil, err
	}
	b.renderer.RenderPost(post)
	return post, nil
}
