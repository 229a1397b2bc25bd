package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vshell/internal/logging"
)

func newFileStore(t *testing.T, backups int) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), backups, logging.NewNullLogger())
	require.NoError(t, err)
	return s
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, newFileStore(t, 2))
}

func TestFileStore_WritesOneFilePerKey(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t, 0)

	require.NoError(t, s.Save(ctx, "terminal_history", []byte(`["pwd"]`)))

	data, err := os.ReadFile(filepath.Join(s.Dir(), "terminal_history.json"))
	require.NoError(t, err)
	assert.Equal(t, `["pwd"]`, string(data))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp", "temp files must not be left behind")
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir, 1, logging.NewNullLogger())
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, "k", []byte(`1`)))

	second, err := NewFileStore(dir, 1, logging.NewNullLogger())
	require.NoError(t, err)
	got, err := second.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `1`, string(got))
}

func TestFileStore_KeepsNewestBackups(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t, 2)

	for _, v := range []string{`1`, `2`, `3`, `4`} {
		require.NoError(t, s.Save(ctx, "k", []byte(v)))
	}

	backups, err := s.Backups("k")
	require.NoError(t, err)
	require.Len(t, backups, 2)

	newest, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, `3`, string(newest))
	oldest, err := os.ReadFile(backups[1])
	require.NoError(t, err)
	assert.Equal(t, `2`, string(oldest))
}

func TestFileStore_BackupsArePerKey(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t, 1)

	require.NoError(t, s.Save(ctx, "a", []byte(`1`)))
	require.NoError(t, s.Save(ctx, "a", []byte(`2`)))
	require.NoError(t, s.Save(ctx, "b", []byte(`1`)))
	require.NoError(t, s.Save(ctx, "b", []byte(`2`)))

	a, err := s.Backups("a")
	require.NoError(t, err)
	b, err := s.Backups("b")
	require.NoError(t, err)
	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
}

func TestFileStore_NoBackupsWhenDisabled(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t, 0)

	require.NoError(t, s.Save(ctx, "k", []byte(`1`)))
	require.NoError(t, s.Save(ctx, "k", []byte(`2`)))

	backups, err := s.Backups("k")
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestFileStore_RejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	s := newFileStore(t, 0)

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		assert.Error(t, s.Save(ctx, key, []byte(`1`)), "key %q", key)
		_, err := s.Load(ctx, key)
		assert.Error(t, err, "key %q", key)
	}
}
