package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/vshell/pkg/vshell"
)

var (
	_ vshell.Store = (*MemoryStore)(nil)
	_ vshell.Store = (*FileStore)(nil)
	_ vshell.Store = (*PostgresStore)(nil)
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s vshell.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Load(ctx, vshell.KeyHistory)
	assert.ErrorIs(t, err, vshell.ErrKeyNotFound)

	require.NoError(t, s.Save(ctx, vshell.KeyHistory, []byte(`["ls"]`)))
	got, err := s.Load(ctx, vshell.KeyHistory)
	require.NoError(t, err)
	assert.JSONEq(t, `["ls"]`, string(got))

	require.NoError(t, s.Save(ctx, vshell.KeyHistory, []byte(`["ls","pwd"]`)))
	got, err = s.Load(ctx, vshell.KeyHistory)
	require.NoError(t, err)
	assert.JSONEq(t, `["ls","pwd"]`, string(got))

	require.NoError(t, s.Save(ctx, vshell.KeyTranscript, []byte(`[]`)))
	got, err = s.Load(ctx, vshell.KeyTranscript)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))

	require.NoError(t, s.Delete(ctx, vshell.KeyHistory))
	_, err = s.Load(ctx, vshell.KeyHistory)
	assert.ErrorIs(t, err, vshell.ErrKeyNotFound)

	assert.NoError(t, s.Delete(ctx, vshell.KeyHistory), "deleting a missing key is not an error")
}
