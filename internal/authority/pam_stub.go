//go:build !pam || !cgo || windows

package authority

import (
	"errors"

	"github.com/hnrobert/lumauth/internal/auth"
)

var errNoPAM = errors.New("pam backend not compiled in (build with -tags pam and cgo)")

func NewPAM(Options) (auth.Authority, error) {
	return nil, errNoPAM
}
