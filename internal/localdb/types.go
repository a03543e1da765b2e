package localdb

type PasswdEntry struct {
	Name   string
	Passwd string
	UID    int
	GID    int
	Gecos  string
	Home   string
	Shell  string
}

type ShadowEntry struct {
	Name       string
	Hash       string
	LastChange string
	Min        string
	Max        string
	Warn       string
	Inactive   string
	Expire     string
	Reserved   string
}

// Locked reports whether the stored hash can never match a password.
// An empty hash is treated as locked too: passwordless logins are not
// accepted over the VPN.
func (e *ShadowEntry) Locked() bool {
	h := e.Hash
	return h == "" || h == "!" || h == "*" || h[0] == '!' || h[0] == '*'
}

type GroupEntry struct {
	Name    string
	Passwd  string
	GID     int
	Members []string
}

// HasMember reports whether user is listed as a supplementary member.
func (e *GroupEntry) HasMember(user string) bool {
	for _, m := range e.Members {
		if m == user {
			return true
		}
	}
	return false
}
