package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
	"github.com/itchan-dev/boards/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(ctx context.Context, creds domain.Credentials) (domain.UserId, error)
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	GrantAdmin(ctx context.Context, username domain.Username) error
}

type Auth struct {
	storage   AuthStorage
	jwt       Jwt
	validator CredentialsValidator
}

type AuthStorage interface {
	SaveUser(ctx context.Context, user domain.User) (domain.UserId, error)
	User(ctx context.Context, username domain.Username) (domain.User, error)
	SetAdmin(ctx context.Context, username domain.Username, admin bool) error
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

func (a *Auth) Signup(ctx context.Context, creds domain.Credentials) (domain.UserId, error) {
	if err := a.validator.Username(creds.Username); err != nil {
		return 0, err
	}
	if err := a.validator.Password(creds.Password); err != nil {
		return 0, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := a.storage.SaveUser(ctx, domain.User{Username: creds.Username, PassHash: string(passHash)})
	if err != nil {
		return 0, err
	}
	logger.Log.Info("user signed up", "user_id", id)
	return id, nil
}

// Login checks the credentials and returns an access token.
// Unknown user and wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	user, err := a.storage.User(ctx, creds.Username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", internal_errors.Unauthorized("Invalid credentials")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "user_id", user.Id)
		return "", internal_errors.Unauthorized("Invalid credentials")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}
	return token, nil
}

func (a *Auth) GrantAdmin(ctx context.Context, username domain.Username) error {
	return a.storage.SetAdmin(ctx, username, true)
}
