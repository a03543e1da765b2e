package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	t.Parallel()
	valid := ValidationResult{Valid: true}
	invalid := ValidationResult{Code: CodeLogonFailure, Err: ErrInvalidCredentials}

	tests := []struct {
		name    string
		v       ValidationResult
		checkOn bool
		member  bool
		want    Decision
	}{
		{"invalid, no group check", invalid, false, false, RejectCredentials},
		{"invalid, member", invalid, true, true, RejectCredentials},
		{"invalid, not member", invalid, true, false, RejectCredentials},
		{"invalid, check off, member", invalid, false, true, RejectCredentials},
		{"valid, check off", valid, false, false, Accept},
		{"valid, check off, member", valid, false, true, Accept},
		{"valid, member", valid, true, true, Accept},
		{"valid, not member", valid, true, false, RejectGroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.v, tt.checkOn, tt.member))
		})
	}
}

func TestDecision_ZeroValueRejects(t *testing.T) {
	t.Parallel()
	var d Decision
	assert.NotEqual(t, Accept, d)
	assert.Equal(t, "reject-credentials", d.String())
	assert.Equal(t, "accept", Accept.String())
	assert.Equal(t, "reject-group", RejectGroup.String())
}

func TestGroupCheckEnabled(t *testing.T) {
	t.Parallel()
	assert.False(t, GroupCheckEnabled(""))
	assert.True(t, GroupCheckEnabled(" "), "only the exact empty string disables the check")
	assert.True(t, GroupCheckEnabled("\t"))
	assert.True(t, GroupCheckEnabled("VPN Users"))
}
