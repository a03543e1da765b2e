package localdb

type PasswdFile struct {
	entries []*PasswdEntry
}

func LoadPasswd(path string) (*PasswdFile, error) {
	entries, err := loadColonFile(path, func(parts []string) (*PasswdEntry, error) {
		if len(parts) < 7 {
			return nil, nil
		}
		uid, err := atoi(parts[2], "passwd.uid")
		if err != nil {
			return nil, err
		}
		gid, err := atoi(parts[3], "passwd.gid")
		if err != nil {
			return nil, err
		}
		return &PasswdEntry{
			Name:   parts[0],
			Passwd: parts[1],
			UID:    uid,
			GID:    gid,
			Gecos:  parts[4],
			Home:   parts[5],
			Shell:  parts[6],
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &PasswdFile{entries: entries}, nil
}

func (f *PasswdFile) Find(name string) *PasswdEntry {
	for _, e := range f.entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}
