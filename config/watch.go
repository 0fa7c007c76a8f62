package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch watches a config file and sends a freshly loaded Config down the returned channel whenever it's written.
// The file's directory is watched rather than the file itself, so editors that save by replacing the file still
// trigger a reload. Files that fail to load are logged and skipped. Only the latest config is kept if the receiver
// falls behind. Watching stops, and the channel is closed, when ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan *Config, error) {

	if logger == nil {
		logger = slog.Default()
	}

	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	configs := make(chan *Config, 1)

	go func() {

		defer close(configs)
		defer watcher.Close()

		for {
			select {

			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Clean(event.Name) != path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				cfg, err := Load(path)
				if err != nil {
					logger.Warn("config reload failed", "path", path, "err", err)
					continue
				}

				logger.Info("config reloaded", "path", path)

				// Drop a config the receiver hasn't picked up yet in favor of the new one
				select {
				case <-configs:
				default:
				}
				configs <- cfg

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "err", err)

			}
		}

	}()

	return configs, nil

}
