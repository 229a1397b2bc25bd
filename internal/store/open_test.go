package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vshell/internal/config"
	"github.com/vvka-141/vshell/internal/logging"
	"github.com/vvka-141/vshell/pkg/vshell"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), config.StoreConfig{Backend: config.BackendMemory}, logging.NewNullLogger())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
}

func TestOpen_FileUsesNamespaceDirectory(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(context.Background(), config.StoreConfig{
		Backend:   config.BackendFile,
		Dir:       dir,
		Namespace: "work",
		Backups:   config.IntPtr(1),
	}, logging.NewNullLogger())
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "k", []byte(`1`)))
	_, err = os.Stat(filepath.Join(dir, "work", "k.json"))
	assert.NoError(t, err)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Backend: "redis"}, logging.NewNullLogger())
	assert.ErrorIs(t, err, vshell.ErrInvalidConfig)
}

func TestOpen_FileRejectsEscapingNamespace(t *testing.T) {
	dir := t.TempDir()
	for _, ns := range []string{"..", "../../x", `a\b`, "a/b"} {
		t.Run(ns, func(t *testing.T) {
			_, err := Open(context.Background(), config.StoreConfig{
				Backend:   config.BackendFile,
				Dir:       filepath.Join(dir, "state"),
				Namespace: ns,
			}, logging.NewNullLogger())

			assert.ErrorIs(t, err, vshell.ErrInvalidConfig)
		})
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may be created for a rejected namespace")
}

func TestOpen_FileZeroBackups(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(context.Background(), config.StoreConfig{
		Backend: config.BackendFile,
		Dir:     dir,
		Backups: config.IntPtr(0),
	}, logging.NewNullLogger())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "k", []byte(`1`)))
	require.NoError(t, s.Save(ctx, "k", []byte(`2`)))

	backups, err := s.(*FileStore).Backups("k")
	require.NoError(t, err)
	assert.Empty(t, backups)
}
