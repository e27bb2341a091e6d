package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/itchan-dev/boards/internal/domain"
	internal_errors "github.com/itchan-dev/boards/internal/errors"
)

// Field bounds, counted in characters.
const (
	MaxBoardNameLen        = 50
	MaxBoardDescriptionLen = 150
	MaxTopicSubjectLen     = 255
	MaxPostMessageLen      = 4000
	MinUsernameLen         = 3
	MaxUsernameLen         = 150
	MinPasswordLen         = 8
)

func checkLength(field, value string, min, max int) error {
	n := utf8.RuneCountInString(value)
	if n < min {
		if min == 1 {
			return internal_errors.Validation(fmt.Sprintf("%s must not be empty", field))
		}
		return internal_errors.Validation(fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	if n > max {
		return internal_errors.Validation(fmt.Sprintf("%s is too long: max length is %d", field, max))
	}
	return nil
}

type BoardValidator struct{}

func (BoardValidator) Name(name domain.BoardName) error {
	return checkLength("Board name", name, 1, MaxBoardNameLen)
}

func (BoardValidator) Description(description domain.BoardDescription) error {
	return checkLength("Board description", description, 0, MaxBoardDescriptionLen)
}

type TopicValidator struct{}

func (TopicValidator) Subject(subject domain.TopicSubject) error {
	return checkLength("Subject", subject, 1, MaxTopicSubjectLen)
}

type PostValidator struct{}

func (PostValidator) Message(message domain.MsgText) error {
	return checkLength("Message", message, 1, MaxPostMessageLen)
}

type CredentialsValidator struct{}

func (CredentialsValidator) Username(username domain.Username) error {
	if err := checkLength("Username", username, MinUsernameLen, MaxUsernameLen); err != nil {
		return err
	}
	if strings.ContainsAny(username, " \t\r\n") {
		return internal_errors.Validation("Username must not contain whitespace")
	}
	return nil
}

func (CredentialsValidator) Password(password domain.Password) error {
	return checkLength("Password", password, MinPasswordLen, 1<<10)
}
