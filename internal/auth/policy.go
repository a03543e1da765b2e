package auth

import "context"

type Decision int

// The zero Decision rejects.
const (
	RejectCredentials Decision = iota
	RejectGroup
	Accept
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case RejectCredentials:
		return "reject-credentials"
	case RejectGroup:
		return "reject-group"
	default:
		return "unknown"
	}
}

// GroupCheckEnabled reports whether group is a real requirement. Only the
// exact empty string disables the check.
func GroupCheckEnabled(group string) bool {
	return group != ""
}

// Decide combines the two gates into a Decision.
func Decide(v ValidationResult, groupCheckEnabled, isMember bool) Decision {
	switch {
	case !v.Valid:
		return RejectCredentials
	case !groupCheckEnabled:
		return Accept
	case isMember:
		return Accept
	default:
		return RejectGroup
	}
}

// Result is the full outcome of Authenticate.
type Result struct {
	Decision   Decision
	Validation ValidationResult
	// GroupChecked is set when the authority was asked for group membership.
	GroupChecked bool
}

// Authenticate runs the decision pipeline for req. Group membership is only
// queried for valid credentials with a required group configured, so the
// membership of accounts presented with a wrong password is never looked up.
func Authenticate(ctx context.Context, a Authority, req Request, requiredGroup string) Result {
	v := Validate(ctx, a, req.Username, req.Password)
	res := Result{Validation: v}

	enabled := GroupCheckEnabled(requiredGroup)
	member := false
	if v.Valid && enabled {
		member = IsMember(a, req.Username, requiredGroup)
		res.GroupChecked = true
	}
	res.Decision = Decide(v, enabled, member)
	return res
}
