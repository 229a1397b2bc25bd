// Package persist maps session state onto the three keys of a vshell.Store.
//
// Each key is loaded and validated on its own, so a corrupt transcript never
// costs the user their files. Loading never fails: anything missing or
// malformed falls back to its fresh value and the fallback is logged.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/vvka-141/vshell/internal/logging"
	"github.com/vvka-141/vshell/internal/shell"
	"github.com/vvka-141/vshell/internal/vfs"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// Snapshot is the whole persisted session.
type Snapshot struct {
	Root       *vfs.Record  `json:"root" yaml:"root"`
	Path       []string     `json:"path" yaml:"path"`
	Transcript []shell.Line `json:"transcript" yaml:"transcript"`
	History    []string     `json:"history" yaml:"history"`
}

// State is a loaded session, ready to hand to shell.NewSession.
type State struct {
	FS         *vfs.FileSystem
	Transcript []shell.Line
	History    []string
}

// treeState is the value stored under vshell.KeyFileSystem.
type treeState struct {
	Root *vfs.Record `json:"root"`
	Path []string    `json:"path"`
}

// Adapter reads and writes session state through a Store.
type Adapter struct {
	store  vshell.Store
	logger vshell.Logger
}

var _ shell.Persister = (*Adapter)(nil)

// New creates an Adapter over store.
func New(store vshell.Store, logger vshell.Logger) *Adapter {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Adapter{store: store, logger: logger}
}

// Load restores the saved session, falling back per key.
func (a *Adapter) Load(ctx context.Context) State {
	st := State{
		FS:         a.loadTree(ctx),
		Transcript: []shell.Line{},
		History:    []string{},
	}
	if lines, ok := loadJSON[[]shell.Line](ctx, a, vshell.KeyTranscript); ok && lines != nil {
		st.Transcript = lines
	}
	if history, ok := loadJSON[[]string](ctx, a, vshell.KeyHistory); ok && history != nil {
		st.History = history
	}
	a.logger.Verbose("loaded session: %d nodes, cwd %s, %d transcript lines, %d history entries",
		st.FS.CountNodes(), st.FS.WorkingPath(), len(st.Transcript), len(st.History))
	return st
}

func (a *Adapter) loadTree(ctx context.Context) *vfs.FileSystem {
	saved, ok := loadJSON[treeState](ctx, a, vshell.KeyFileSystem)
	if !ok {
		return vfs.New()
	}
	fs, err := vfs.Restore(saved.Root, saved.Path)
	if err != nil {
		a.logger.Error("discarding saved %s: %v", vshell.KeyFileSystem, err)
		return vfs.New()
	}
	return fs
}

// loadJSON reads and decodes one key. ok is false when the key is missing,
// unreadable or malformed; the reason is logged.
func loadJSON[T any](ctx context.Context, a *Adapter, key string) (T, bool) {
	var v T
	data, err := a.store.Load(ctx, key)
	switch {
	case errors.Is(err, vshell.ErrKeyNotFound):
		a.logger.Verbose("no saved %s, starting fresh", key)
		return v, false
	case err != nil:
		a.logger.Error("failed to load %s: %v", key, err)
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		a.logger.Error("discarding malformed %s: %v", key, err)
		return v, false
	}
	return v, true
}

// SaveTree stores the tree and the current path.
func (a *Adapter) SaveTree(ctx context.Context, fs *vfs.FileSystem) error {
	path := fs.Cwd()
	if path == nil {
		path = []string{}
	}
	return a.saveJSON(ctx, vshell.KeyFileSystem, treeState{Root: fs.Export(), Path: path})
}

// SaveTranscript stores the transcript.
func (a *Adapter) SaveTranscript(ctx context.Context, lines []shell.Line) error {
	if lines == nil {
		lines = []shell.Line{}
	}
	return a.saveJSON(ctx, vshell.KeyTranscript, lines)
}

// SaveHistory stores the command history.
func (a *Adapter) SaveHistory(ctx context.Context, history []string) error {
	if history == nil {
		history = []string{}
	}
	return a.saveJSON(ctx, vshell.KeyHistory, history)
}

// ClearTranscript stores an empty transcript.
func (a *Adapter) ClearTranscript(ctx context.Context) error {
	return a.SaveTranscript(ctx, nil)
}

func (a *Adapter) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := a.store.Save(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Export returns the session as it would be restored.
func (a *Adapter) Export(ctx context.Context) Snapshot {
	st := a.Load(ctx)
	path := st.FS.Cwd()
	if path == nil {
		path = []string{}
	}
	return Snapshot{
		Root:       st.FS.Export(),
		Path:       path,
		Transcript: st.Transcript,
		History:    st.History,
	}
}

// Reset deletes every saved key. Missing keys are not an error.
func (a *Adapter) Reset(ctx context.Context) error {
	var errs error
	for _, key := range []string{vshell.KeyFileSystem, vshell.KeyTranscript, vshell.KeyHistory} {
		if err := a.store.Delete(ctx, key); err != nil && !errors.Is(err, vshell.ErrKeyNotFound) {
			errs = multierr.Append(errs, fmt.Errorf("failed to delete %s: %w", key, err))
		}
	}
	return errs
}
