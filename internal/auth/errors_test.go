package auth

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want uint32
	}{
		{"nil", nil, CodeSuccess},
		{"invalid", ErrInvalidCredentials, CodeLogonFailure},
		{"unknown wrapped", fmt.Errorf("%w: bob", ErrUnknownAccount), CodeLogonFailure},
		{"locked", ErrAccountLocked, CodeAccountDisabled},
		{"expired", ErrAccountExpired, CodeAccountExpired},
		{"unsupported", ErrUnsupportedHash, CodeNotSupported},
		{"backend", fmt.Errorf("%w: boom", ErrBackend), CodeInternalError},
		{"other", errors.New("boom"), CodeInternalError},
		{"host error", &HostError{Op: "LogonUserW", Code: 1327, Err: ErrInvalidCredentials}, 1327},
		{"wrapped host error", fmt.Errorf("validate: %w", &HostError{Op: "NetUserGetLocalGroups", Code: 2221}), 2221},
		{"errno", fmt.Errorf("open: %w", syscall.Errno(13)), 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestHostError(t *testing.T) {
	t.Parallel()
	err := &HostError{Op: "LogonUserW", Code: 1326, Err: ErrInvalidCredentials}
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "LogonUserW: invalid credentials (error code 1326)", err.Error())

	bare := &HostError{Op: "NetUserGetLocalGroups", Code: 2221}
	assert.Equal(t, "NetUserGetLocalGroups: error code 2221", bare.Error())
}
