// Package authority provides the host identity backends behind auth.Authority.
//
// shadow reads the local passwd/shadow/group files and verifies crypt(3)
// hashes; pam delegates credential checks to a PAM service (binaries built
// with the "pam" tag); sam asks the Windows Security Account Manager.
// Memory is an in-process authority for tests and dry runs.
package authority

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/hnrobert/lumauth/internal/auth"
	"github.com/hnrobert/lumauth/internal/logger"
)

type Kind string

const (
	KindShadow Kind = "shadow"
	KindPAM    Kind = "pam"
	KindSAM    Kind = "sam"
)

// DefaultKind is the backend matching the local account authority of the
// running OS.
func DefaultKind() Kind {
	if runtime.GOOS == "windows" {
		return KindSAM
	}
	return KindShadow
}

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return DefaultKind(), nil
	case KindShadow, KindPAM, KindSAM:
		return k, nil
	default:
		return "", fmt.Errorf("unknown backend %q (want shadow, pam or sam)", s)
	}
}

type Options struct {
	// HostRoot is the directory the account files are resolved under.
	HostRoot string
	// PAMService names the PAM service used by the pam backend.
	PAMService string
	// SuFallback lets the shadow backend verify hash formats the crypt
	// library cannot handle (yescrypt) by running su(1).
	SuFallback bool
	Log        *logger.Logger
}

// New returns the backend of the given kind.
func New(kind Kind, opts Options) (auth.Authority, error) {
	switch kind {
	case KindShadow:
		return NewShadow(opts)
	case KindPAM:
		return NewPAM(opts)
	case KindSAM:
		return NewSAM(opts)
	default:
		return nil, fmt.Errorf("unknown backend %q", kind)
	}
}
