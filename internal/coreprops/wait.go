package coreprops

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/CDXX710/GameDAC-Animation/internal/ports"
)

// Wait resolves path, and if that fails watches its directory until the
// engine creates or rewrites the file. It returns the first address that
// resolves, or ctx.Err() if ctx ends first.
//
// The directory itself must exist; SteelSeries Engine creates it on install.
func Wait(ctx context.Context, path string, logger ports.Logger) (string, error) {
	if addr, err := Resolve(path); err == nil {
		return addr, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return "", fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return "", fmt.Errorf("watch %s: %w", dir, err)
	}

	// The file may have appeared between the first attempt and Add.
	if addr, err := Resolve(path); err == nil {
		return addr, nil
	}

	logger.Info("waiting for SteelSeries Engine", ports.String("path", path))

	name := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return "", fmt.Errorf("watcher closed")
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			addr, err := Resolve(path)
			if err != nil {
				// Partial write; the next Write event will retry.
				logger.Debug("coreProps not ready", ports.Err(err))
				continue
			}
			return addr, nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return "", fmt.Errorf("watcher closed")
			}
			logger.Warn("coreProps watcher error", ports.Err(err))
		}
	}
}
