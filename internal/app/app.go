package app

import (
	"fmt"
	"sync"

	"github.com/dshills/reviso/internal/config"
	"github.com/dshills/reviso/internal/session"
)

// Options configures an App.
type Options struct {
	// ConfigPath is the config file to load. Empty means defaults only.
	ConfigPath string

	// Watch enables live reload of the config file. Requires ConfigPath.
	Watch bool

	// Logger overrides the default logger.
	Logger *Logger
}

// App owns the running pieces of reviso: configuration, logging, and the
// session registry. Configuration changes picked up by the watcher are
// re-applied to live sessions.
type App struct {
	mu sync.Mutex

	cfg      config.Config
	logger   *Logger
	sessions *session.Manager
	watcher  *config.Watcher

	shutdown bool
}

// New loads configuration and assembles the application.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(WithLevel(ParseLogLevel(cfg.Logging.Level)))
	}

	a := &App{
		cfg:      cfg,
		logger:   logger,
		sessions: session.NewManager(session.WithMaxHistory(cfg.History.MaxEntries)),
	}

	if opts.Watch && opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, a.handleConfigChange)
		if err != nil {
			return nil, fmt.Errorf("watching config: %w", err)
		}
		a.watcher = w
		logger.Debug("watching config file %s", w.Path())
	}

	logger.Info("started with history depth %d", cfg.History.MaxEntries)
	return a, nil
}

// Sessions returns the session registry.
func (a *App) Sessions() *session.Manager {
	return a.sessions
}

// Logger returns the application logger.
func (a *App) Logger() *Logger {
	return a.logger
}

// Config returns the active configuration.
func (a *App) Config() config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cfg
}

// handleConfigChange re-applies a freshly loaded configuration.
func (a *App) handleConfigChange(cfg config.Config, err error) {
	if err != nil {
		a.logger.Warn("config reload failed, keeping previous settings: %v", err)
		return
	}

	a.mu.Lock()
	prev := a.cfg
	a.cfg = cfg
	a.mu.Unlock()

	if cfg.History.MaxEntries != prev.History.MaxEntries {
		a.sessions.SetMaxHistory(cfg.History.MaxEntries)
		a.logger.Info("history depth changed %d -> %d", prev.History.MaxEntries, cfg.History.MaxEntries)
	}
	if cfg.Logging.Level != prev.Logging.Level {
		a.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
		a.logger.Info("log level changed to %s", cfg.Logging.Level)
	}
}

// Shutdown stops the watcher and closes all sessions. Idempotent.
func (a *App) Shutdown() {
	a.mu.Lock()
	if a.shutdown {
		a.mu.Unlock()
		return
	}
	a.shutdown = true
	watcher := a.watcher
	a.mu.Unlock()

	if watcher != nil {
		if err := watcher.Close(); err != nil {
			a.logger.Warn("closing config watcher: %v", err)
		}
	}
	a.sessions.CloseAll()
	a.logger.Debug("shutdown complete")
}
