package auth

import "strings"

// IsMember reports whether username belongs to the local group groupName.
// Group names compare case-insensitively. A failed enumeration counts as
// not a member.
func IsMember(a Authority, username, groupName string) bool {
	groups, err := a.ListGroups(username)
	if err != nil {
		return false
	}
	for _, g := range groups {
		if strings.EqualFold(g, groupName) {
			return true
		}
	}
	return false
}
