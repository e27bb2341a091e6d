package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
)

// CreatePost adds a reply. The topic must belong to the given board.
func (s *Storage) CreatePost(ctx context.Context, creationData domain.PostCreationData) (domain.Post, error) {
	var topic domain.TopicId
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM topics WHERE board_id = $1 AND id = $2",
		creationData.Board, creationData.Topic,
	).Scan(&topic)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Topic not found")
		}
		return domain.Post{}, fmt.Errorf("failed to validate topic: %w", err)
	}

	return insertPost(ctx, s.db, topic, creationData.Author, creationData.Message)
}

func insertPost(ctx context.Context, q Querier, topic domain.TopicId, author domain.UserId, message domain.MsgText) (domain.Post, error) {
	post := domain.Post{Message: message, Topic: topic, CreatedBy: author}
	err := q.QueryRowContext(ctx, `
		INSERT INTO posts (message, topic_id, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		message, topic, author,
	).Scan(&post.Id, &post.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			// topic was deleted concurrently or author is unknown
			return domain.Post{}, internal_errors.NotFound("Topic or user not found")
		}
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}
	return post, nil
}

func (s *Storage) GetPost(ctx context.Context, id domain.PostId) (domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRowContext(ctx,
		"SELECT id, message, topic_id, created_by, created_at FROM posts WHERE id = $1", id,
	).Scan(&post.Id, &post.Message, &post.Topic, &post.CreatedBy, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}

// UpdatePost overwrites the message and refreshes the last-touched time.
func (s *Storage) UpdatePost(ctx context.Context, id domain.PostId, message domain.MsgText) (domain.Post, error) {
	post := domain.Post{Id: id, Message: message}
	err := s.db.QueryRowContext(ctx, `
		UPDATE posts SET message = $2, created_at = GREATEST(clock_timestamp(), created_at)
		WHERE id = $1
		RETURNING topic_id, created_by, created_at`,
		id, message,
	).Scan(&post.Topic, &post.CreatedBy, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, internal_errors.NotFound("Post not found")
		}
		return domain.Post{}, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// nullablePost scans the optional last-post columns of a LEFT JOIN.
type nullablePost struct {
	id        sql.NullInt64
	message   sql.NullString
	topic     sql.NullInt64
	createdBy sql.NullInt64
	createdAt sql.NullTime
}

func (n nullablePost) post() *domain.Post {
	if !n.id.Valid {
		return nil
	}
	return &domain.Post{
		Id:        n.id.Int64,
		Message:   n.message.String,
		Topic:     n.topic.Int64,
		CreatedBy: n.createdBy.Int64,
		CreatedAt: n.createdAt.Time,
	}
}
