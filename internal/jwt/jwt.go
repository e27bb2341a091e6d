package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
	"github.com/itchan-dev/boards/internal/logger"
)

type JwtService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (domain.User, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["username"] = user.Username
	claims["admin"] = user.Admin
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("can't sign token: %w", err)
	}
	return tokenString, nil
}

// DecodeToken verifies signature and expiry and returns the identity the token carries.
func (j *Jwt) DecodeToken(jwtStr string) (domain.User, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("jwt rejected", "error", err)
		return domain.User{}, internal_errors.Unauthorized("Invalid token signature")
	}
	if !token.Valid {
		return domain.User{}, internal_errors.Unauthorized("Invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, internal_errors.Unauthorized("Invalid token claims")
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return domain.User{}, internal_errors.Unauthorized("Invalid token claims")
	}
	username, _ := claims["username"].(string)
	admin, _ := claims["admin"].(bool)

	return domain.User{Id: int64(uid), Username: username, Admin: admin}, nil
}
