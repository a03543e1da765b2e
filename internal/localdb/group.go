package localdb

import "strings"

type GroupFile struct {
	entries []*GroupEntry
}

func LoadGroup(path string) (*GroupFile, error) {
	entries, err := loadColonFile(path, func(parts []string) (*GroupEntry, error) {
		if len(parts) < 4 {
			return nil, nil
		}
		gid, err := atoi(parts[2], "group.gid")
		if err != nil {
			return nil, err
		}
		members := []string{}
		if parts[3] != "" {
			members = strings.Split(parts[3], ",")
		}
		return &GroupEntry{Name: parts[0], Passwd: parts[1], GID: gid, Members: members}, nil
	})
	if err != nil {
		return nil, err
	}
	return &GroupFile{entries: entries}, nil
}

func (f *GroupFile) FindByGID(gid int) *GroupEntry {
	for _, e := range f.entries {
		if e.GID == gid {
			return e
		}
	}
	return nil
}

// MemberOf returns the names of the groups that list user as a
// supplementary member, in file order.
func (f *GroupFile) MemberOf(user string) []string {
	var out []string
	for _, e := range f.entries {
		if e.HasMember(user) {
			out = append(out, e.Name)
		}
	}
	return out
}
