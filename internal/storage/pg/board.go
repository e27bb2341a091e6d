package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
)

func (s *Storage) CreateBoard(ctx context.Context, creationData domain.BoardCreationData) (domain.Board, error) {
	board := domain.Board{Name: creationData.Name, Description: creationData.Description}
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO boards (name, description) VALUES ($1, $2) RETURNING id",
		creationData.Name, creationData.Description,
	).Scan(&board.Id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Board{}, internal_errors.Conflict(fmt.Sprintf("Board with name %q already exists", creationData.Name))
		}
		return domain.Board{}, fmt.Errorf("failed to insert board: %w", err)
	}
	return board, nil
}

func (s *Storage) UpdateBoard(ctx context.Context, updateData domain.BoardUpdateData) (domain.Board, error) {
	board := domain.Board{Id: updateData.Id}
	err := s.db.QueryRowContext(ctx, `
		UPDATE boards SET name = $2, description = $3
		WHERE id = $1
		RETURNING name, description`,
		updateData.Id, updateData.Name, updateData.Description,
	).Scan(&board.Name, &board.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		if isUniqueViolation(err) {
			return domain.Board{}, internal_errors.Conflict(fmt.Sprintf("Board with name %q already exists", updateData.Name))
		}
		return domain.Board{}, fmt.Errorf("failed to update board: %w", err)
	}
	return board, nil
}

func (s *Storage) GetBoard(ctx context.Context, id domain.BoardId) (domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM boards WHERE id = $1", id,
	).Scan(&board.Id, &board.Name, &board.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		return domain.Board{}, fmt.Errorf("failed to fetch board: %w", err)
	}
	return board, nil
}

// ListBoards returns boards in insertion order. A non-nil filter narrows the
// result to that single board (empty result if it does not exist).
func (s *Storage) ListBoards(ctx context.Context, filter *domain.BoardId) ([]domain.BoardSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			b.id, b.name, b.description,
			(SELECT COUNT(*) FROM topics t WHERE t.board_id = b.id) AS topic_count,
			(SELECT COUNT(*) FROM posts p JOIN topics t ON t.id = p.topic_id WHERE t.board_id = b.id) AS post_count,
			lp.id, lp.message, lp.topic_id, lp.created_by, lp.created_at
		FROM boards b
		LEFT JOIN LATERAL (
			SELECT p.id, p.message, p.topic_id, p.created_by, p.created_at
			FROM posts p
			JOIN topics t ON t.id = p.topic_id
			WHERE t.board_id = b.id
			ORDER BY p.created_at DESC, p.id DESC
			LIMIT 1
		) lp ON TRUE
		WHERE $1::BIGINT IS NULL OR b.id = $1
		ORDER BY b.id`, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	boards := []domain.BoardSummary{}
	for rows.Next() {
		var b domain.BoardSummary
		var lp nullablePost
		if err := rows.Scan(
			&b.Id, &b.Name, &b.Description, &b.TopicCount, &b.PostCount,
			&lp.id, &lp.message, &lp.topic, &lp.createdBy, &lp.createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan board row: %w", err)
		}
		b.LastPost = lp.post()
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}

// PostCount counts posts in all topics of the board.
func (s *Storage) PostCount(ctx context.Context, board domain.BoardId) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM posts p
		JOIN topics t ON t.id = p.topic_id
		WHERE t.board_id = $1`, board,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func (s *Storage) TopicCount(ctx context.Context, board domain.BoardId) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM topics WHERE board_id = $1", board).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count topics: %w", err)
	}
	return count, nil
}

// LastPost returns the most recently touched post of the board, ties broken
// by highest id. Returns nil if the board has no posts.
func (s *Storage) LastPost(ctx context.Context, board domain.BoardId) (*domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRowContext(ctx, `
		SELECT p.id, p.message, p.topic_id, p.created_by, p.created_at
		FROM posts p
		JOIN topics t ON t.id = p.topic_id
		WHERE t.board_id = $1
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT 1`, board,
	).Scan(&post.Id, &post.Message, &post.Topic, &post.CreatedBy, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch last post: %w", err)
	}
	return &post, nil
}

// DeleteBoard removes the board; topics and posts cascade.
func (s *Storage) DeleteBoard(ctx context.Context, id domain.BoardId) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM boards WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("Board not found")
	}
	return nil
}
