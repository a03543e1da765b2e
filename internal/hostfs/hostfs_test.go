package hostfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		root    string
		rel     string
		want    string
		wantErr bool
	}{
		{name: "default root", root: "", rel: EtcShadowRel, want: filepath.Join("/", "etc", "shadow")},
		{name: "mounted root", root: "/host", rel: "/etc/group", want: filepath.Join("/host", "etc", "group")},
		{name: "empty", root: "/host", rel: "", wantErr: true},
		{name: "escape", root: "/host", rel: "../etc/passwd", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Path(tt.root, tt.rel)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()
	base := t.TempDir()

	dir := filepath.Join(base, "logs")
	require.NoError(t, EnsureDir(dir, 0o755))
	require.NoError(t, EnsureDir(dir, 0o755), "existing directory is not an error")

	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	err = EnsureDir(filepath.Join(base, "a", "b"), 0o755)
	assert.Error(t, err, "only the final path element is created")
}

func TestAppendFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.log")

	require.NoError(t, AppendFile(path, []byte("one\r\n"), 0o644))
	require.NoError(t, AppendFile(path, []byte("two\r\n"), 0o644))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\r\ntwo\r\n", string(b))
}
