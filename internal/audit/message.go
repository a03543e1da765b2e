package audit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const redacted = "********"

type Kind int

const (
	KindEnvironmentFailure Kind = iota
	KindAuthenticated
	KindInvalidCredentials
	KindMissingGroup
	KindBackendFailure
)

// Message is one audit record. Use the constructors; the text is rendered
// from fixed templates, attempt data is only ever substituted as arguments.
type Message struct {
	Kind     Kind
	Username string
	Password string
	Group    string
	Backend  string
	Code     uint32
}

// EnvironmentFailure records that the credentials could not be read from
// the environment.
func EnvironmentFailure(code uint32) Message {
	return Message{Kind: KindEnvironmentFailure, Code: code}
}

func Authenticated(username string) Message {
	return Message{Kind: KindAuthenticated, Username: username}
}

// InvalidCredentials records a rejected credential pair. The attempted
// password is part of the record unless the logger redacts it.
func InvalidCredentials(username, password string, code uint32) Message {
	return Message{Kind: KindInvalidCredentials, Username: username, Password: password, Code: code}
}

// MissingGroup records valid credentials of an account outside group.
func MissingGroup(username, password, group string) Message {
	return Message{Kind: KindMissingGroup, Username: username, Password: password, Group: group}
}

// BackendFailure records that the account backend could not be set up, so
// no credential check was attempted.
func BackendFailure(backend string, code uint32) Message {
	return Message{Kind: KindBackendFailure, Backend: backend, Code: code}
}

// Render returns the message text without timestamp or line ending.
func (m Message) Render(redactPassword bool) string {
	password := clean(m.Password)
	if redactPassword {
		password = redacted
	}
	switch m.Kind {
	case KindEnvironmentFailure:
		return fmt.Sprintf("Could not retrieve environment variables (error code %d).", m.Code)
	case KindAuthenticated:
		return fmt.Sprintf("Successfully authenticated %s.", clean(m.Username))
	case KindInvalidCredentials:
		s := fmt.Sprintf("Failed login-attempt with username = %s, password = %s.", clean(m.Username), password)
		if m.Code != 0 {
			s += fmt.Sprintf(" Host error code %d.", m.Code)
		}
		return s
	case KindMissingGroup:
		return fmt.Sprintf("Failed login-attempt with username = %s, password = %s. "+
			"Credentials valid but lacking required group membership (%s).",
			clean(m.Username), password, clean(m.Group))
	case KindBackendFailure:
		return fmt.Sprintf("Could not initialize the account backend %s (error code %d).", clean(m.Backend), m.Code)
	default:
		return "Unknown audit event " + strconv.Itoa(int(m.Kind)) + "."
	}
}

// clean makes attempt data safe for a single log line: invalid UTF-8 is
// replaced and control characters are escaped, so a crafted username cannot
// forge additional records.
func clean(s string) string {
	s = strings.ToValidUTF8(s, "�")
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			q := strconv.QuoteRune(r)
			b.WriteString(q[1 : len(q)-1])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
