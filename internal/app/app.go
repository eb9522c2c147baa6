package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/hance08/atm/internal/config"
	"github.com/hance08/atm/internal/service"
	"github.com/hance08/atm/internal/store"
	"github.com/pterm/pterm"
)

type App struct {
	Service *service.Service
	Logger  *pterm.Logger
}

var logLevels = map[string]pterm.LogLevel{
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
	"disabled": pterm.LogLevelDisabled,
}

// NewApp builds the logger, the store and core logic, seeds the account
// directory, then returns the App entity and its cleanup func.
func NewApp(cfg *config.Config, migrationFS fs.FS, logOut io.Writer) (*App, func(), error) {
	logger, err := NewLogger(cfg.Log, logOut)
	if err != nil {
		return nil, nil, err
	}

	repo, err := newStore(cfg.Store, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	cleanup := func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close store", logger.Args("error", err))
		}
	}

	svc := service.NewService(repo, logger)

	if err := svc.Account.SeedAccounts(context.Background(), cfg.Accounts); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to seed accounts: %w", err)
	}

	logger.Debug("application ready", logger.Args("driver", cfg.Store.Driver, "accounts", len(cfg.Accounts)))

	return &App{
		Service: svc,
		Logger:  logger,
	}, cleanup, nil
}

// NewLogger maps the log section of the config onto a pterm logger.
func NewLogger(cfg config.LogConfig, out io.Writer) (*pterm.Logger, error) {
	level, ok := logLevels[strings.ToLower(cfg.Level)]
	if !ok {
		return nil, fmt.Errorf("unknown log level '%s'", cfg.Level)
	}

	logger := pterm.DefaultLogger.WithWriter(out).WithLevel(level)
	if cfg.Format == config.FormatJSON {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}
	return logger, nil
}

func newStore(cfg config.StoreConfig, migrationFS fs.FS) (store.Repository, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return store.NewSQLiteStore(migrationFS)
	case config.DriverMemory, "":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver '%s'", cfg.Driver)
	}
}
