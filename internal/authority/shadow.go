package authority

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"

	"github.com/hnrobert/lumauth/internal/auth"
	"github.com/hnrobert/lumauth/internal/localdb"
	"github.com/hnrobert/lumauth/internal/logger"
)

// Shadow authenticates against the local passwd/shadow/group files.
type Shadow struct {
	db         *localdb.DB
	suFallback bool
	log        *logger.Logger
	now        func() time.Time
}

func NewShadow(opts Options) (*Shadow, error) {
	db, err := localdb.Open(opts.HostRoot)
	if err != nil {
		return nil, err
	}
	return &Shadow{db: db, suFallback: opts.SuFallback, log: opts.Log, now: time.Now}, nil
}

func (s *Shadow) ValidateCredentials(ctx context.Context, username, password string) error {
	se, err := s.db.Shadow(username)
	if err != nil {
		if errors.Is(err, localdb.ErrUserNotFound) {
			return fmt.Errorf("%w: %s", auth.ErrUnknownAccount, username)
		}
		return fmt.Errorf("%w: %v", auth.ErrBackend, err)
	}
	if se.Locked() {
		return auth.ErrAccountLocked
	}
	if expired(se.Expire, s.now()) {
		return auth.ErrAccountExpired
	}

	ok, err := verifyCrypt(se.Hash, password)
	if errors.Is(err, auth.ErrUnsupportedHash) && s.suFallback {
		s.log.Debug("hash format of %s not supported by crypt, verifying with su", username)
		ok, err = verifyWithSu(ctx, username, password)
	}
	if err != nil {
		return err
	}
	if !ok {
		return auth.ErrInvalidCredentials
	}
	return nil
}

func (s *Shadow) ListGroups(username string) ([]string, error) {
	groups, err := s.db.Groups(username)
	if errors.Is(err, localdb.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: %s", auth.ErrUnknownAccount, username)
	}
	return groups, err
}

func verifyCrypt(hash, password string) (bool, error) {
	// Support common crypt formats:
	// $1$ (md5-crypt), $5$ (sha256-crypt), $6$ (sha512-crypt).
	// Note: this does NOT support newer formats like yescrypt or bcrypt.
	crypters := []crypt.Crypter{
		sha512_crypt.New(),
		sha256_crypt.New(),
		md5_crypt.New(),
	}

	// Verify returns nil on success.
	for _, c := range crypters {
		if err := c.Verify(hash, []byte(password)); err == nil {
			return true, nil
		}
	}

	// Ubuntu and Debian default to yescrypt ($y$).
	if strings.HasPrefix(hash, "$y$") || strings.HasPrefix(hash, "$7$") || strings.HasPrefix(hash, "$2") {
		return false, auth.ErrUnsupportedHash
	}
	return false, nil
}

// expired interprets the shadow expire field: days since the epoch after
// which the account can no longer log in.
func expired(field string, now time.Time) bool {
	if field == "" {
		return false
	}
	days, err := strconv.ParseInt(field, 10, 64)
	if err != nil || days < 0 {
		return false
	}
	return now.Unix()/86400 >= days
}
