package localdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPasswd = `# local accounts
root:x:0:0:root:/root:/bin/bash
alice:x:1000:1000:Alice:/home/alice:/bin/bash
bob:x:1001:1001:Bob:/home/bob:/bin/bash
broken-line
`
	testShadow = `root:*:19000:0:99999:7:::
alice:$6$salt$hash:19000:0:99999:7:::
bob:!$6$salt$hash:19000
`
	testGroup = `root:x:0:
alice:x:1000:
bob:x:1001:
sudo:x:27:alice
VPN Users:x:2000:alice,carol
admins:x:2001:carol
`
)

func writeHost(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	etc := filepath.Join(root, "etc")
	require.NoError(t, os.MkdirAll(etc, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "passwd"), []byte(testPasswd), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "shadow"), []byte(testShadow), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(etc, "group"), []byte(testGroup), 0o644))
	return root
}

func TestDB_Groups(t *testing.T) {
	t.Parallel()
	db, err := Open(writeHost(t))
	require.NoError(t, err)

	groups, err := db.Groups("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "sudo", "VPN Users"}, groups)

	groups, err = db.Groups("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, groups)

	_, err = db.Groups("carol")
	assert.ErrorIs(t, err, ErrUserNotFound, "carol is listed in group but has no passwd entry")
}

func TestDB_Shadow(t *testing.T) {
	t.Parallel()
	db, err := Open(writeHost(t))
	require.NoError(t, err)

	e, err := db.Shadow("alice")
	require.NoError(t, err)
	assert.Equal(t, "$6$salt$hash", e.Hash)
	assert.False(t, e.Locked())

	e, err = db.Shadow("bob")
	require.NoError(t, err)
	assert.True(t, e.Locked())
	assert.Equal(t, "19000", e.LastChange)
	assert.Equal(t, "", e.Reserved, "short lines are padded")

	e, err = db.Shadow("root")
	require.NoError(t, err)
	assert.True(t, e.Locked())

	_, err = db.Shadow("mallory")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDB_MissingFiles(t *testing.T) {
	t.Parallel()
	db, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = db.Groups("alice")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = db.Shadow("alice")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadGroup_InvalidGID(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "group")
	require.NoError(t, os.WriteFile(path, []byte("staff:x:abc:alice\n"), 0o644))

	_, err := LoadGroup(path)
	assert.ErrorContains(t, err, "group.gid")
}

func TestShadowEntry_Locked(t *testing.T) {
	t.Parallel()
	for hash, want := range map[string]bool{
		"":             true,
		"!":            true,
		"*":            true,
		"!!":           true,
		"!$6$abc$def":  true,
		"$6$abc$def":   false,
		"$y$j9T$x$y":   false,
		"$1$salt$hash": false,
	} {
		e := ShadowEntry{Name: "u", Hash: hash}
		assert.Equal(t, want, e.Locked(), "hash %q", hash)
	}
}
