// Package openvpn holds the contract between the helper and the OpenVPN
// daemon when used as an auth-user-pass-verify script with the via-env
// method: credentials arrive in the environment, the verdict leaves as the
// exit status.
package openvpn

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/hnrobert/lumauth/internal/auth"
)

const (
	EnvUsername = "username"
	EnvPassword = "password"

	// MaxUsernameLen and MaxPasswordLen bound the credential sizes (UNLEN
	// and PWLEN), in characters.
	MaxUsernameLen = 256
	MaxPasswordLen = 256
)

// Error codes reported when the environment cannot supply a credential.
const (
	CodeEnvVarNotFound     uint32 = 203 // ERROR_ENVVAR_NOT_FOUND
	CodeInsufficientBuffer uint32 = 122 // ERROR_INSUFFICIENT_BUFFER
)

const (
	ExitAccept = 0
	ExitReject = 1
)

// EnvError reports a credential that could not be read from the environment.
type EnvError struct {
	Name string
	Code uint32
}

func (e *EnvError) Error() string {
	switch e.Code {
	case CodeInsufficientBuffer:
		return fmt.Sprintf("environment variable %q exceeds its maximum length (error code %d)", e.Name, e.Code)
	default:
		return fmt.Sprintf("environment variable %q not set (error code %d)", e.Name, e.Code)
	}
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ReadCredentials reads the credential pair from the environment. Missing,
// empty and over-long values are errors of type *EnvError.
func ReadCredentials(lookup LookupFunc) (auth.Request, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	username, err := read(lookup, EnvUsername, MaxUsernameLen)
	if err != nil {
		return auth.Request{}, err
	}
	password, err := read(lookup, EnvPassword, MaxPasswordLen)
	if err != nil {
		return auth.Request{}, err
	}
	return auth.Request{Username: username, Password: password}, nil
}

func read(lookup LookupFunc, name string, limit int) (string, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return "", &EnvError{Name: name, Code: CodeEnvVarNotFound}
	}
	if utf8.RuneCountInString(v) > limit {
		return "", &EnvError{Name: name, Code: CodeInsufficientBuffer}
	}
	return v, nil
}

// ExitCode maps a decision to the process exit status.
func ExitCode(d auth.Decision) int {
	if d == auth.Accept {
		return ExitAccept
	}
	return ExitReject
}
