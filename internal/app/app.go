// Package app wires the engine together: configuration, logging, the
// session over a host, and the lifecycle around all three.
package app

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/modalkit/internal/config"
	"github.com/dshills/modalkit/internal/dispatcher"
	"github.com/dshills/modalkit/internal/host"
	"github.com/dshills/modalkit/internal/logging"
	"github.com/dshills/modalkit/internal/session"
)

// Application coordinates the engine components over one host. It owns
// the configuration (including the live-reload watcher), the logger,
// and the session lifecycle.
type Application struct {
	mu sync.RWMutex

	host    host.Host
	cfg     config.Config
	log     *logging.Logger
	session *session.Session

	watcher *config.Watcher
	unsub   host.Unsubscribe

	running atomic.Bool
	opts    Options
}

// Options configures the application.
type Options struct {
	// Host is the editor surface the engine drives. Required.
	Host host.Host

	// ConfigPath is the TOML configuration file. Empty runs on
	// defaults with no file watching.
	ConfigPath string

	// LogOutput overrides the log destination. Nil uses stderr.
	LogOutput io.Writer
}

// New builds an application from its options. Start activates it.
func New(opts Options) (*Application, error) {
	if opts.Host == nil {
		return nil, fmt.Errorf("app: a host is required")
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultLoggerConfig()
	logCfg.Level = logging.ParseLogLevel(cfg.Log.Level)
	if opts.LogOutput != nil {
		logCfg.Output = opts.LogOutput
	}
	log := logging.NewLogger(logCfg)

	a := &Application{
		host: opts.Host,
		cfg:  cfg,
		log:  log,
		opts: opts,
	}
	a.session = session.New(opts.Host, sessionOptions(cfg, log))
	return a, nil
}

// sessionOptions maps the configuration tree onto session options.
func sessionOptions(cfg config.Config, log *logging.Logger) session.Options {
	return session.Options{
		Logger: log,
		Dispatcher: dispatcher.Config{
			NoticeUnmatched: cfg.Dispatcher.NoticeUnmatched,
			EnableMetrics:   cfg.Dispatcher.Metrics,
		},
		StartInsert:     cfg.Input.StartMode == "insert",
		DisableSurround: !cfg.Input.Surround,
	}
}

// Start activates the session and begins watching the configuration
// file and the host's configuration-changed event.
func (a *Application) Start() error {
	if !a.running.CompareAndSwap(false, true) {
		return fmt.Errorf("app: already started")
	}

	if err := a.session.Activate(); err != nil {
		a.running.Store(false)
		return err
	}

	if a.opts.ConfigPath != "" {
		w, err := config.NewWatcher(a.opts.ConfigPath, a.onReload)
		if err != nil {
			// Reload is a convenience; a watch failure must not stop
			// startup.
			a.log.Warn("config watch unavailable: %v", err)
		} else {
			a.watcher = w
		}
	}

	a.unsub = a.host.Events().OnConfigChanged(func() {
		a.onReload(config.Load(a.opts.ConfigPath))
	})

	a.log.Info("started (mode %s)", a.session.Mode())
	return nil
}

// onReload applies a freshly loaded configuration. The log level
// changes live; structural options (start mode, surround, dispatch)
// take effect on the next start.
func (a *Application) onReload(cfg config.Config, err error) {
	if err != nil {
		a.log.Warn("config reload rejected: %v", err)
		return
	}

	a.mu.Lock()
	prev := a.cfg
	a.cfg = cfg
	a.mu.Unlock()

	if cfg.Log.Level != prev.Log.Level {
		a.log.SetLevel(logging.ParseLogLevel(cfg.Log.Level))
		a.log.Info("log level now %s", cfg.Log.Level)
	}
	if cfg.Input != prev.Input || cfg.Dispatcher != prev.Dispatcher {
		a.log.Info("input/dispatcher changes apply on restart")
	}
}

// Shutdown deactivates the session and stops the watcher. Safe to call
// more than once.
func (a *Application) Shutdown() {
	if !a.running.CompareAndSwap(true, false) {
		return
	}
	if a.unsub != nil {
		a.unsub()
		a.unsub = nil
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("config watcher close: %v", err)
		}
		a.watcher = nil
	}
	a.session.WaitIdle()
	a.session.Deactivate()
	a.log.Info("stopped")
}

// IsRunning reports whether Start has succeeded and Shutdown has not
// yet run.
func (a *Application) IsRunning() bool {
	return a.running.Load()
}

// Session exposes the running session.
func (a *Application) Session() *session.Session {
	return a.session
}

// Config returns the current configuration snapshot.
func (a *Application) Config() config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

// Logger returns the application logger.
func (a *Application) Logger() *logging.Logger {
	return a.log
}
