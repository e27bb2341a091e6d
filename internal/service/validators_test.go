package service

import (
	"strings"
	"testing"

	internal_errors "github.com/itchan-dev/boards/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		check   func() error
		wantErr bool
	}{
		{"board name ok", func() error { return BoardValidator{}.Name("Go") }, false},
		{"board name empty", func() error { return BoardValidator{}.Name("") }, true},
		{"board name 50", func() error { return BoardValidator{}.Name(strings.Repeat("n", 50)) }, false},
		{"board name 51", func() error { return BoardValidator{}.Name(strings.Repeat("n", 51)) }, true},
		{"description empty ok", func() error { return BoardValidator{}.Description("") }, false},
		{"description 151", func() error { return BoardValidator{}.Description(strings.Repeat("d", 151)) }, true},
		{"subject empty", func() error { return TopicValidator{}.Subject("") }, true},
		{"subject 255", func() error { return TopicValidator{}.Subject(strings.Repeat("s", 255)) }, false},
		{"subject 256", func() error { return TopicValidator{}.Subject(strings.Repeat("s", 256)) }, true},
		{"message empty", func() error { return PostValidator{}.Message("") }, true},
		{"message 4000 multibyte", func() error { return PostValidator{}.Message(strings.Repeat("ж", 4000)) }, false},
		{"message 4001", func() error { return PostValidator{}.Message(strings.Repeat("m", 4001)) }, true},
		{"username short", func() error { return CredentialsValidator{}.Username("ab") }, true},
		{"username spaces", func() error { return CredentialsValidator{}.Username("a b c") }, true},
		{"username ok", func() error { return CredentialsValidator{}.Username("alice") }, false},
		{"password short", func() error { return CredentialsValidator{}.Password("1234567") }, true},
		{"password ok", func() error { return CredentialsValidator{}.Password("12345678") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if tt.wantErr {
				assert.ErrorIs(t, err, internal_errors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
