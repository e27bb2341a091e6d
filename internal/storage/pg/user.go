package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
)

func (s *Storage) SaveUser(ctx context.Context, user domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users (username, pass_hash, is_admin) VALUES ($1, $2, $3) RETURNING id",
		user.Username, user.PassHash, user.Admin,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, internal_errors.Conflict("Username is already taken")
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) User(ctx context.Context, username domain.Username) (domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, username, pass_hash, is_admin, created_at FROM users WHERE username = $1", username))
}

func (s *Storage) UserById(ctx context.Context, id domain.UserId) (domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, username, pass_hash, is_admin, created_at FROM users WHERE id = $1", id))
}

func (s *Storage) scanUser(row *sql.Row) (domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.Id, &user.Username, &user.PassHash, &user.Admin, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}

func (s *Storage) SetAdmin(ctx context.Context, username domain.Username, admin bool) error {
	result, err := s.db.ExecContext(ctx, "UPDATE users SET is_admin = $2 WHERE username = $1", username, admin)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NotFound("User not found")
	}
	return nil
}
