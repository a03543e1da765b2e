//go:build !windows

package authority

import (
	"errors"

	"github.com/hnrobert/lumauth/internal/auth"
)

var errNoSAM = errors.New("sam backend is only available on windows")

func NewSAM(Options) (auth.Authority, error) {
	return nil, errNoSAM
}
