package main

import (
	"fmt"

	"github.com/asalkapakli/ykscountdown/internal/config"
	"github.com/asalkapakli/ykscountdown/internal/counter"
	"github.com/asalkapakli/ykscountdown/internal/logging"
	"github.com/asalkapakli/ykscountdown/internal/settings"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
}

// app bundles what every command needs after startup.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *logging.Logger
	backend    *settings.FileBackend
	store      *settings.Store
}

func defaultConfigHint() string {
	return config.DefaultPath()
}

// loadApp reads the config, opens the logger and loads the stored settings.
// The default config file is created on first run; an explicit --config
// path must be written by the user.
func loadApp(flags *rootFlags) (*app, error) {
	path := flags.configPath
	autoCreate := path == ""
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, autoCreate)
	if err != nil {
		return nil, err
	}

	levelName := cfg.Logging.Level
	if flags.logLevel != "" {
		levelName = flags.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logFile := cfg.Logging.File
	if flags.logFile != "" {
		logFile = flags.logFile
	}
	logger, err := logging.NewLogger(level, logFile)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	backend := settings.NewFileBackend(cfg.Storage.Dir)
	store := settings.NewStore(backend, cfg.Storage.Key, logger)
	store.Load()

	logger.LogStartup(path, cfg.Storage.Dir, cfg.Display.Timezone, cfg.Counter.Enabled)

	return &app{
		configPath: path,
		cfg:        cfg,
		logger:     logger,
		backend:    backend,
		store:      store,
	}, nil
}

// counterClient returns nil when the visit counter is disabled.
func (a *app) counterClient() *counter.Client {
	if !a.cfg.Counter.Enabled {
		return nil
	}
	return counter.NewClient(a.cfg.Counter.BaseURL, a.cfg.Counter.Namespace, a.cfg.CounterTimeout(), a.logger)
}

func (a *app) settingsPath() string {
	return a.backend.Path(a.cfg.Storage.Key)
}

func (a *app) Close() {
	_ = a.logger.Close()
}
