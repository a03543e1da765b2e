package localdb

type ShadowFile struct {
	entries []*ShadowEntry
}

func LoadShadow(path string) (*ShadowFile, error) {
	entries, err := loadColonFile(path, func(parts []string) (*ShadowEntry, error) {
		if len(parts) < 2 {
			return nil, nil
		}
		for len(parts) < 9 {
			parts = append(parts, "")
		}
		return &ShadowEntry{
			Name:       parts[0],
			Hash:       parts[1],
			LastChange: parts[2],
			Min:        parts[3],
			Max:        parts[4],
			Warn:       parts[5],
			Inactive:   parts[6],
			Expire:     parts[7],
			Reserved:   parts[8],
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return &ShadowFile{entries: entries}, nil
}

func (f *ShadowFile) Find(name string) *ShadowEntry {
	for _, e := range f.entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}
