package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vvka-141/vshell/internal/logging"
	"github.com/vvka-141/vshell/pkg/vshell"
)

const (
	fileExt        = ".json"
	backupDirName  = ".backups"
	backupTimeFmt  = "20060102-150405.000000000"
	backupNameSep  = "@"
	stateFileMode  = 0600
	stateDirectory = 0755
)

// FileStore keeps one JSON file per key in a directory. Each save first
// copies the previous value into a timestamped backup and keeps the newest
// backupCount backups per key.
type FileStore struct {
	dir         string
	backupDir   string
	backupCount int
	logger      vshell.Logger
	mu          sync.Mutex
	backupSeq   uint64
}

// NewFileStore creates dir and its backup directory if needed.
func NewFileStore(dir string, backupCount int, logger vshell.Logger) (*FileStore, error) {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve state directory %s: %w", dir, err)
	}
	backupDir := filepath.Join(absDir, backupDirName)
	if err := os.MkdirAll(backupDir, stateDirectory); err != nil {
		return nil, fmt.Errorf("%w: failed to create state directory %s: %v", vshell.ErrStoreUnavailable, absDir, err)
	}
	logger.Verbose("file store at %s (keeping %d backups)", absDir, backupCount)
	return &FileStore{
		dir:         absDir,
		backupDir:   backupDir,
		backupCount: backupCount,
		logger:      logger,
	}, nil
}

// Dir returns the absolute state directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.dir, key+fileExt), nil
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, vshell.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Save writes value through a temp file and rename so a crash never leaves
// a half-written key.
func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.createBackup(key, path); err != nil {
		s.logger.Error("failed to back up %s: %v", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(value); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := tmp.Chmod(stateFileMode); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("failed to set mode on %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Delete removes the key. Backups are kept.
func (s *FileStore) Delete(_ context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Backups returns the backup files of key, newest first.
func (s *FileStore) Backups(key string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listBackups(key)
}

func (s *FileStore) createBackup(key, path string) error {
	if s.backupCount <= 0 {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	s.backupSeq++
	name := fmt.Sprintf("%s%s%s-%06d%s", key, backupNameSep, time.Now().UTC().Format(backupTimeFmt), s.backupSeq%1000000, fileExt)
	if err := os.WriteFile(filepath.Join(s.backupDir, name), data, stateFileMode); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return s.pruneBackups(key)
}

func (s *FileStore) listBackups(key string) ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		return nil, err
	}
	prefix := key + backupNameSep
	var backups []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, prefix) && filepath.Ext(name) == fileExt {
			backups = append(backups, filepath.Join(s.backupDir, name))
		}
	}
	// Timestamps sort lexically.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

func (s *FileStore) pruneBackups(key string) error {
	backups, err := s.listBackups(key)
	if err != nil {
		return err
	}
	for i := s.backupCount; i < len(backups); i++ {
		if err := os.Remove(backups[i]); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i], err)
		}
	}
	return nil
}
