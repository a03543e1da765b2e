package openvpn

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnrobert/lumauth/internal/auth"
)

func envOf(m map[string]string) LookupFunc {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestReadCredentials(t *testing.T) {
	t.Parallel()
	req, err := ReadCredentials(envOf(map[string]string{"username": "alice", "password": " correct "}))
	require.NoError(t, err)
	assert.Equal(t, auth.Request{Username: "alice", Password: " correct "}, req, "values are not trimmed")
}

func TestReadCredentials_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		env      map[string]string
		wantName string
		wantCode uint32
	}{
		{"nothing set", map[string]string{}, EnvUsername, CodeEnvVarNotFound},
		{"no password", map[string]string{"username": "alice"}, EnvPassword, CodeEnvVarNotFound},
		{"empty username", map[string]string{"username": "", "password": "x"}, EnvUsername, CodeEnvVarNotFound},
		{"long username", map[string]string{"username": strings.Repeat("a", MaxUsernameLen+1), "password": "x"}, EnvUsername, CodeInsufficientBuffer},
		{"long password", map[string]string{"username": "alice", "password": strings.Repeat("p", MaxPasswordLen+1)}, EnvPassword, CodeInsufficientBuffer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCredentials(envOf(tt.env))
			var envErr *EnvError
			require.True(t, errors.As(err, &envErr), "got %v", err)
			assert.Equal(t, tt.wantName, envErr.Name)
			assert.Equal(t, tt.wantCode, envErr.Code)
			assert.Contains(t, envErr.Error(), tt.wantName)
		})
	}
}

func TestReadCredentials_MaxLength(t *testing.T) {
	t.Parallel()
	_, err := ReadCredentials(envOf(map[string]string{
		"username": strings.Repeat("a", MaxUsernameLen),
		"password": strings.Repeat("p", MaxPasswordLen),
	}))
	assert.NoError(t, err)
}

func TestReadCredentials_CountsCharacters(t *testing.T) {
	t.Parallel()
	user := strings.Repeat("用", 100)
	req, err := ReadCredentials(envOf(map[string]string{
		"username": user,
		"password": strings.Repeat("密", MaxPasswordLen),
	}))
	require.NoError(t, err, "%d bytes but %d characters", len(user), 100)
	assert.Equal(t, user, req.Username)

	_, err = ReadCredentials(envOf(map[string]string{
		"username": strings.Repeat("用", MaxUsernameLen+1),
		"password": "x",
	}))
	var envErr *EnvError
	require.True(t, errors.As(err, &envErr))
	assert.Equal(t, CodeInsufficientBuffer, envErr.Code)
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, ExitCode(auth.Accept))
	assert.Equal(t, 1, ExitCode(auth.RejectCredentials))
	assert.Equal(t, 1, ExitCode(auth.RejectGroup))
}
