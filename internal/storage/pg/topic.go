package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
)

// CreateTopic inserts the topic and its opening post in one transaction,
// so no reader ever sees a topic without posts.
func (s *Storage) CreateTopic(ctx context.Context, creationData domain.TopicCreationData) (domain.Topic, domain.Post, error) {
	topic := domain.Topic{
		Subject:   creationData.Subject,
		Board:     creationData.Board,
		CreatedBy: creationData.Author,
	}
	var post domain.Post

	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		// Verify board exists; FOR KEY SHARE keeps it from being deleted under us
		var board domain.BoardId
		err := tx.QueryRowContext(ctx,
			"SELECT id FROM boards WHERE id = $1 FOR KEY SHARE", creationData.Board,
		).Scan(&board)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return internal_errors.NotFound("Board not found")
			}
			return fmt.Errorf("failed to validate board: %w", err)
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO topics (subject, board_id, created_by)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, views`,
			creationData.Subject, creationData.Board, creationData.Author,
		).Scan(&topic.Id, &topic.CreatedAt, &topic.Views)
		if err != nil {
			if isForeignKeyViolation(err) {
				return internal_errors.NotFound("User not found")
			}
			return fmt.Errorf("failed to insert topic: %w", err)
		}

		post, err = insertPost(ctx, tx, topic.Id, creationData.Author, creationData.Message)
		if err != nil {
			return fmt.Errorf("failed to create first post: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Topic{}, domain.Post{}, err
	}
	return topic, post, nil
}

func (s *Storage) GetTopic(ctx context.Context, board domain.BoardId, id domain.TopicId) (domain.Topic, error) {
	var topic domain.Topic
	err := s.db.QueryRowContext(ctx, `
		SELECT id, subject, board_id, created_by, created_at, views
		FROM topics
		WHERE board_id = $1 AND id = $2`, board, id,
	).Scan(&topic.Id, &topic.Subject, &topic.Board, &topic.CreatedBy, &topic.CreatedAt, &topic.Views)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Topic{}, internal_errors.NotFound("Topic not found")
		}
		return domain.Topic{}, fmt.Errorf("failed to fetch topic: %w", err)
	}
	return topic, nil
}

// IncrementTopicViews bumps the counter by one and returns the new value.
func (s *Storage) IncrementTopicViews(ctx context.Context, id domain.TopicId) (int64, error) {
	var views int64
	err := s.db.QueryRowContext(ctx,
		"UPDATE topics SET views = views + 1 WHERE id = $1 RETURNING views", id,
	).Scan(&views)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, internal_errors.NotFound("Topic not found")
		}
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}
	return views, nil
}

// ListTopics returns the board's topics, most recently active first.
func (s *Storage) ListTopics(ctx context.Context, board domain.BoardId) ([]domain.TopicSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			t.id, t.subject, t.board_id, t.created_by, t.created_at, t.views,
			COUNT(p.id) - 1 AS replies,
			COALESCE(MAX(p.created_at), t.created_at) AS last_activity
		FROM topics t
		LEFT JOIN posts p ON p.topic_id = t.id
		WHERE t.board_id = $1
		GROUP BY t.id
		ORDER BY last_activity DESC, t.id DESC`, board)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	topics := []domain.TopicSummary{}
	for rows.Next() {
		var t domain.TopicSummary
		if err := rows.Scan(
			&t.Id, &t.Subject, &t.Board, &t.CreatedBy, &t.CreatedAt, &t.Views,
			&t.Replies, &t.LastActivity,
		); err != nil {
			return nil, fmt.Errorf("failed to scan topic row: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return topics, nil
}

// TopicPosts returns all posts of the topic, oldest first.
func (s *Storage) TopicPosts(ctx context.Context, topic domain.TopicId) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, message, topic_id, created_by, created_at
		FROM posts
		WHERE topic_id = $1
		ORDER BY id`, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.Id, &p.Message, &p.Topic, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}
