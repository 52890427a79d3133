package typedef

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch loads path, passes the set to fn, and reloads it whenever the file
// is written or replaced until ctx is cancelled. A reload that fails is
// logged and fn keeps the previous set.
//
// fn is called from the watching goroutine.
func Watch(ctx context.Context, path string, fn func(*Set)) error {
	set, err := Load(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are seen.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	fn(set)
	go watchLoop(ctx, watcher, path, fn)
	return nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, fn func(*Set)) {
	defer watcher.Close()
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			set, err := Load(path)
			if err != nil {
				slog.Warn("type definitions reload failed",
					slog.String("path", path),
					slog.Any("error", err))
				continue
			}
			slog.Debug("type definitions reloaded",
				slog.String("path", path),
				slog.Int("types", len(set.types)))
			fn(set)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("type definitions watch error",
				slog.String("path", path),
				slog.Any("error", err))
		}
	}
}
