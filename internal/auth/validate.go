package auth

import "context"

// ValidationResult is the outcome of checking a credential pair.
// Code is the host error code of a failed check; it is meant for the audit
// log and never reaches the VPN daemon.
type ValidationResult struct {
	Valid bool
	Code  uint32
	Err   error
}

// Validate asks a for the validity of username and password. The values are
// passed through unchanged; case folding and trimming are the authority's
// business.
func Validate(ctx context.Context, a Authority, username, password string) ValidationResult {
	if err := a.ValidateCredentials(ctx, username, password); err != nil {
		return ValidationResult{Code: CodeOf(err), Err: err}
	}
	return ValidationResult{Valid: true}
}
