package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/gofrs/flock"

	"vcshell/internal/bridge"
	"vcshell/internal/config"
	"vcshell/internal/invoke"
	"vcshell/internal/logging"
	"vcshell/internal/presets"
)

// Daemon serves the HTTP bridge and enforces single-instance execution.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	server *bridge.Server

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	PID          int
	Address      string
	LockFilePath string
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || logger == nil {
		return nil, errors.New("daemon requires config and logger")
	}

	resolver := presets.NewResolver(cfg.PresetsFile(), presets.WithLogger(logger))
	runner := invoke.New(cfg.CompressorBinary(), invoke.WithLogger(logger))
	server, err := bridge.New(cfg, resolver, runner, logger)
	if err != nil {
		return nil, fmt.Errorf("create bridge server: %w", err)
	}

	lockPath := filepath.Join(cfg.Paths.LogDir, "vcshelld.lock")
	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		server:   server,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the daemon lock and begins serving the bridge.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	if err := os.MkdirAll(filepath.Dir(d.lockPath), 0o755); err != nil {
		return fmt.Errorf("create lock directory: %w", err)
	}
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another vcshelld instance is already running")
	}

	serveCtx, cancel := context.WithCancel(ctx)
	if err := d.server.Start(serveCtx); err != nil {
		_ = d.lock.Unlock()
		cancel()
		return fmt.Errorf("start bridge: %w", err)
	}
	d.cancel = cancel

	d.running.Store(true)
	d.logger.Info("vcshell daemon started",
		logging.String("lock", d.lockPath),
		logging.String("address", d.server.Addr()),
	)
	return nil
}

// Stop stops serving and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.server.Stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("vcshell daemon stopped")
}

// Status reports runtime information.
func (d *Daemon) Status() Status {
	running := d.running.Load()
	status := Status{
		Running:      running,
		PID:          os.Getpid(),
		LockFilePath: d.lockPath,
	}
	if running {
		status.Address = d.server.Addr()
	}
	return status
}
