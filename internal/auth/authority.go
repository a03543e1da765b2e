package auth

import "context"

// Authority is the host identity subsystem the decision consults.
type Authority interface {
	// ValidateCredentials returns nil when username and password form a
	// valid local account credential pair.
	ValidateCredentials(ctx context.Context, username, password string) error
	// ListGroups returns the names of the local groups username belongs to.
	ListGroups(username string) ([]string, error)
}

// Request is the credential pair of one login attempt.
type Request struct {
	Username string
	Password string
}
