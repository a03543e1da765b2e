package localdb

import (
	"errors"
	"fmt"

	"github.com/hnrobert/lumauth/internal/hostfs"
)

var ErrUserNotFound = errors.New("user not found")

// DB locates the account files of one host.
type DB struct {
	PasswdPath string
	ShadowPath string
	GroupPath  string
}

// Open resolves the account files under root. The files are read lazily.
func Open(root string) (*DB, error) {
	passwd, err := hostfs.Path(root, hostfs.EtcPasswdRel)
	if err != nil {
		return nil, err
	}
	shadow, err := hostfs.Path(root, hostfs.EtcShadowRel)
	if err != nil {
		return nil, err
	}
	group, err := hostfs.Path(root, hostfs.EtcGroupRel)
	if err != nil {
		return nil, err
	}
	return &DB{PasswdPath: passwd, ShadowPath: shadow, GroupPath: group}, nil
}

// Shadow returns the shadow entry of user.
func (db *DB) Shadow(user string) (*ShadowEntry, error) {
	sh, err := LoadShadow(db.ShadowPath)
	if err != nil {
		return nil, fmt.Errorf("load shadow: %w", err)
	}
	e := sh.Find(user)
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, user)
	}
	return e, nil
}

// Groups returns every local group user belongs to: the primary group from
// passwd first, then supplementary groups from the group file. A user
// missing from passwd is an error.
func (db *DB) Groups(user string) ([]string, error) {
	pw, err := LoadPasswd(db.PasswdPath)
	if err != nil {
		return nil, fmt.Errorf("load passwd: %w", err)
	}
	pe := pw.Find(user)
	if pe == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, user)
	}
	gr, err := LoadGroup(db.GroupPath)
	if err != nil {
		return nil, fmt.Errorf("load group: %w", err)
	}

	var out []string
	seen := map[string]bool{}
	if g := gr.FindByGID(pe.GID); g != nil {
		out = append(out, g.Name)
		seen[g.Name] = true
	}
	for _, name := range gr.MemberOf(user) {
		if !seen[name] {
			out = append(out, name)
			seen[name] = true
		}
	}
	return out, nil
}
