package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/vshell/internal/config"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// Open creates the backend named by cfg.Backend. The file backend keeps
// each namespace in its own subdirectory.
func Open(ctx context.Context, cfg config.StoreConfig, logger vshell.Logger) (vshell.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendFile:
		if !config.ValidNamespace(cfg.Namespace) {
			return nil, fmt.Errorf("%w: invalid namespace %q", vshell.ErrInvalidConfig, cfg.Namespace)
		}
		dir := cfg.Dir
		if cfg.Namespace != "" {
			dir = filepath.Join(dir, cfg.Namespace)
		}
		return NewFileStore(dir, cfg.BackupCount(), logger)
	case config.BackendPostgres:
		namespace := cfg.Namespace
		if namespace == "" {
			namespace = vshell.DefaultNamespace
		}
		return OpenPostgres(ctx, cfg.DSN, namespace, logger)
	default:
		return nil, fmt.Errorf("%w: unknown store backend %q", vshell.ErrInvalidConfig, cfg.Backend)
	}
}
