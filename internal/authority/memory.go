package authority

import (
	"context"
	"fmt"

	"github.com/hnrobert/lumauth/internal/auth"
)

// Memory is an in-memory account authority. Passwords maps account names
// to their password, Groups maps account names to their local groups.
type Memory struct {
	Passwords map[string]string
	Groups    map[string][]string
}

func (m *Memory) ValidateCredentials(_ context.Context, username, password string) error {
	want, ok := m.Passwords[username]
	if !ok {
		return fmt.Errorf("%w: %s", auth.ErrUnknownAccount, username)
	}
	if want != password {
		return auth.ErrInvalidCredentials
	}
	return nil
}

func (m *Memory) ListGroups(username string) ([]string, error) {
	if _, ok := m.Passwords[username]; !ok {
		return nil, fmt.Errorf("%w: %s", auth.ErrUnknownAccount, username)
	}
	return append([]string(nil), m.Groups[username]...), nil
}
