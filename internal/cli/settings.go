package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/vvka-141/vshell/internal/config"
	"github.com/vvka-141/vshell/internal/logging"
	"github.com/vvka-141/vshell/internal/persist"
	"github.com/vvka-141/vshell/internal/shell"
	"github.com/vvka-141/vshell/internal/store"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// loadSettings merges, in rising priority: defaults, vshell.yaml,
// environment (including .env) and flags.
func loadSettings(flags globalFlags) (*config.Config, error) {
	_ = godotenv.Load()

	cfg := config.Default()

	fileCfg, err := loadConfigFile(flags.configPath)
	if err != nil {
		return nil, err
	}
	cfg.Merge(fileCfg)
	cfg.ApplyEnv(os.LookupEnv)
	cfg.Merge(&config.Config{
		Store: config.StoreConfig{
			Backend:   flags.store,
			Dir:       flags.stateDir,
			DSN:       flags.dsn,
			Namespace: flags.namespace,
		},
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile reads an explicit --config path, or ./vshell.yaml if it
// exists. Returns nil config if no file applies (not an error).
func loadConfigFile(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to load %s: %v", vshell.ErrInvalidConfig, path, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to load %s: %v", vshell.ErrInvalidConfig, config.ConfigFileName, err)
	}
	return cfg, nil
}

// environment is everything a command needs to reach saved state.
type environment struct {
	cfg     *config.Config
	logger  *logging.ConsoleLogger
	store   vshell.Store
	adapter *persist.Adapter
}

func openEnvironment(ctx context.Context, flags globalFlags) (*environment, error) {
	logger := logging.NewConsoleLogger(flags.verbose)

	cfg, err := loadSettings(flags)
	if err != nil {
		return nil, err
	}
	logger.Verbose("store backend %s, namespace %q", cfg.Store.Backend, cfg.Store.Namespace)

	st, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}
	return &environment{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		adapter: persist.New(st, logger),
	}, nil
}

// newSession restores the saved session and wires write-through persistence.
func (e *environment) newSession(ctx context.Context) (*shell.Session, error) {
	timeout, err := e.cfg.Store.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	st := e.adapter.Load(ctx)
	return shell.NewSession(shell.Options{
		FS:           st.FS,
		History:      st.History,
		Transcript:   st.Transcript,
		Persister:    e.adapter,
		Logger:       e.logger,
		User:         e.cfg.Prompt.User,
		Host:         e.cfg.Prompt.Host,
		Context:      ctx,
		StoreTimeout: timeout,
	}), nil
}

func (e *environment) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Error("failed to close store: %v", err)
	}
	_ = e.logger.Sync()
}
