package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration whenever its file changes on disk.
// Editors typically replace files via rename, so the parent directory is
// watched and events are filtered by name. Changes are debounced before
// reloading to coalesce write bursts.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger

	fsw     *fsnotify.Watcher
	configs chan *Config
}

// Watch starts watching path and delivers each successfully reloaded
// configuration on Configs. Reload failures are logged and skipped, the
// previous configuration simply stays in effect. The watcher stops when
// ctx is cancelled or Close is called.
func Watch(ctx context.Context, path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		debounce: 200 * time.Millisecond,
		logger:   logger,
		fsw:      fsw,
		configs:  make(chan *Config, 1),
	}
	go w.run(ctx)

	logger.Info("watching config", "path", path)
	return w, nil
}

// Configs returns the channel of reloaded configurations.
func (w *Watcher) Configs() <-chan *Config {
	return w.configs
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.configs)
	defer w.fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "error", err)

		case <-fire:
			timer = nil
			fire = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed", "path", w.path, "error", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		w.logger.Warn("config reload rejected", "path", w.path, "error", err)
		return
	}
	w.logger.Info("config reloaded", "path", w.path)

	select {
	case w.configs <- cfg:
	case <-ctx.Done():
	default:
		// Receiver is behind; drop the stale config in the buffer and
		// queue the fresh one.
		select {
		case <-w.configs:
		default:
		}
		select {
		case w.configs <- cfg:
		default:
		}
	}
}
