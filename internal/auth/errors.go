package auth

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownAccount     = errors.New("unknown account")
	ErrAccountLocked      = errors.New("account is locked")
	ErrAccountExpired     = errors.New("account has expired")
	ErrUnsupportedHash    = errors.New("unsupported password hash")
	ErrBackend            = errors.New("auth backend error")
)

// Host error codes recorded in the audit log. The values follow the Win32
// logon error codes so log lines read the same whichever backend produced
// them.
const (
	CodeSuccess         uint32 = 0
	CodeNotSupported    uint32 = 50   // ERROR_NOT_SUPPORTED
	CodeLogonFailure    uint32 = 1326 // ERROR_LOGON_FAILURE
	CodeAccountDisabled uint32 = 1331 // ERROR_ACCOUNT_DISABLED
	CodeInternalError   uint32 = 1359 // ERROR_INTERNAL_ERROR
	CodeAccountExpired  uint32 = 1793 // ERROR_ACCOUNT_EXPIRED
)

// HostError is a failure reported by the host with its own numeric code.
type HostError struct {
	Op   string
	Code uint32
	Err  error
}

func (e *HostError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: error code %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %v (error code %d)", e.Op, e.Err, e.Code)
}

func (e *HostError) Unwrap() error { return e.Err }

// CodeOf maps err to the host error code logged for it. nil maps to
// CodeSuccess; errors that carry no code of their own map through the
// package sentinels, and anything else is CodeInternalError.
func CodeOf(err error) uint32 {
	if err == nil {
		return CodeSuccess
	}
	var he *HostError
	if errors.As(err, &he) {
		return he.Code
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnknownAccount):
		return CodeLogonFailure
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountDisabled
	case errors.Is(err, ErrAccountExpired):
		return CodeAccountExpired
	case errors.Is(err, ErrUnsupportedHash):
		return CodeNotSupported
	default:
		return CodeInternalError
	}
}
