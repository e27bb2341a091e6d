package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/boards/internal/domain"
	"github.com/itchan-dev/boards/internal/logger"
)

type PostService interface {
	Reply(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error)
	Edit(ctx context.Context, editData domain.PostEditData) (domain.Post, error)
	Get(ctx context.Context, id domain.PostId) (domain.Post, error)
}

type Post struct {
	storage   PostStorage
	renderer  Renderer
	validator PostValidator
}

type PostStorage interface {
	CreatePost(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error)
	GetPost(ctx context.Context, id domain.PostId) (domain.Post, error)
	UpdatePost(ctx context.Context, id domain.PostId, message domain.MsgText) (domain.Post, error)
}

func NewPost(storage PostStorage, renderer Renderer) *Post {
	return &Post{storage: storage, renderer: renderer}
}

func (p *Post) Reply(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error) {
	creationData.Message = strings.TrimSpace(creationData.Message)
	if err := p.validator.Message(creationData.Message); err != nil {
		return domain.Post{}, err
	}

	post, err := p.storage.CreatePost(ctx, creationData)
	if err != nil {
		return domain.Post{}, err
	}
	postsCreatedTotal.Inc()
	p.renderer.RenderPost(&post)
	return post, nil
}

// Edit overwrites the message. Who may edit is decided by the caller.
func (p *Post) Edit(ctx context.Context, editData domain.PostEditData) (domain.Post, error) {
	editData.Message = strings.TrimSpace(editData.Message)
	if err := p.validator.Message(editData.Message); err != nil {
		return domain.Post{}, err
	}

	post, err := p.storage.UpdatePost(ctx, editData.Id, editData.Message)
	if err != nil {
		return domain.Post{}, err
	}
	logger.Log.Info("post edited", "post_id", post.Id, "editor_id", editData.Editor.Id)
	p.renderer.RenderPost(&post)
	return post, nil
}

func (p *Post) Get(ctx context.Context, id domain.PostId) (domain.Post, error) {
	post, err := p.storage.GetPost(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	p.renderer.RenderPost(&post)
	return post, nil
}
