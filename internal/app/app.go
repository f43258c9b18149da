package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/teller/internal/config"
	"github.com/hance08/teller/internal/constants"
	"github.com/hance08/teller/internal/logging"
	"github.com/hance08/teller/internal/service"
	"github.com/hance08/teller/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  zerolog.Logger

	// StoreExisted reports whether the store file was present before the
	// app opened it; opening or loading may create it.
	StoreExisted bool
}

// NewApp initialize logger, store and ledger service, then return App entity.
// The ledger is not loaded yet; callers run Service.Load and report its error.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	path, err := StorePath(cfg.Storage)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to resolve store path: %w", err)
	}
	_, statErr := os.Stat(path)

	repo, err := openStore(cfg.Storage.Driver, path, migrationFS, logger)
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	svc := service.NewService(repo, cfg, logger)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing store")
		}
		closeLog()
	}

	return &App{
		Service: svc,
		Store:   repo,
		Logger:  logger,

		StoreExisted: statErr == nil,
	}, cleanup, nil
}

func openStore(driver, path string, migrationFS fs.FS, logger zerolog.Logger) (store.Repository, error) {
	switch strings.ToLower(driver) {
	case "", constants.DriverJSON:
		return store.NewJSONStore(path, logger)
	case constants.DriverSQLite:
		return store.NewSQLiteStore(path, migrationFS, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver '%s' (must be %s or %s)", driver, constants.DriverJSON, constants.DriverSQLite)
	}
}

// StorePath resolves the configured store location, falling back to a
// driver-specific file in the app data directory.
func StorePath(cfg config.StorageConfig) (string, error) {
	if cfg.Path != "" {
		return ExpandPath(cfg.Path)
	}

	appDir, err := AppDataDir()
	if err != nil {
		return "", err
	}

	if strings.EqualFold(cfg.Driver, constants.DriverSQLite) {
		return filepath.Join(appDir, constants.DefaultSQLiteFile), nil
	}
	return filepath.Join(appDir, constants.DefaultJSONFile), nil
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".teller"), nil
	}

	return filepath.Join(configDir, "teller"), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
