//go:build pam && cgo && !windows

package authority

import (
	"context"
	"errors"
	"fmt"

	"github.com/msteinert/pam"

	"github.com/hnrobert/lumauth/internal/auth"
	"github.com/hnrobert/lumauth/internal/localdb"
)

const defaultPAMService = "openvpn"

// PAM checks credentials through a PAM service. Group membership still
// comes from the local group file: PAM has no enumeration interface and NSS
// may include directory sources.
type PAM struct {
	service string
	db      *localdb.DB
}

func NewPAM(opts Options) (*PAM, error) {
	db, err := localdb.Open(opts.HostRoot)
	if err != nil {
		return nil, err
	}
	service := opts.PAMService
	if service == "" {
		service = defaultPAMService
	}
	return &PAM{service: service, db: db}, nil
}

func (p *PAM) ValidateCredentials(_ context.Context, username, password string) error {
	txn, err := pam.StartFunc(p.service, username, func(style pam.Style, _ string) (string, error) {
		switch style {
		case pam.PromptEchoOff, pam.PromptEchoOn:
			return password, nil
		case pam.ErrorMsg, pam.TextInfo:
			return "", nil
		}
		return "", errors.New("unrecognized PAM message style")
	})
	if err != nil {
		return fmt.Errorf("%w: pam start %s: %v", auth.ErrBackend, p.service, err)
	}
	if err := txn.Authenticate(pam.Silent); err != nil {
		return fmt.Errorf("%w: %v", auth.ErrInvalidCredentials, err)
	}
	// Enforce account restrictions (expired, locked, etc.).
	if err := txn.AcctMgmt(pam.Silent); err != nil {
		return fmt.Errorf("%w: %v", auth.ErrAccountLocked, err)
	}
	return nil
}

func (p *PAM) ListGroups(username string) ([]string, error) {
	groups, err := p.db.Groups(username)
	if errors.Is(err, localdb.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: %s", auth.ErrUnknownAccount, username)
	}
	return groups, err
}
