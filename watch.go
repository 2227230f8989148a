package willowtree

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet before it is reloaded.
const reloadDebounce = 200 * time.Millisecond

// Watch reloads the tree file at path whenever it changes and sends every
// tree that loads and validates on the returned channel. Invalid files are
// logged and skipped. The channel is closed when ctx is done.
//
// The directory is watched rather than the file so editors that replace the
// file on save are still seen.
func Watch(ctx context.Context, path string, logger *slog.Logger) (<-chan *TreeNode, error) {
	if logger == nil {
		logger = discardLogger
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve tree path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan *TreeNode, 1)
	go func() {
		defer close(out)
		defer w.Close()
		timer := time.NewTimer(reloadDebounce)
		timer.Stop()
		for {
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				timer.Reset(reloadDebounce)
			case <-timer.C:
				root, err := LoadTreeFile(abs)
				if err != nil {
					logger.Warn("reload skipped", "path", abs, "err", err)
					continue
				}
				logger.Debug("tree reloaded", "path", abs, "nodes", root.Count())
				select {
				case out <- root:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error", "err", err)
			}
		}
	}()
	return out, nil
}

// ApplyReloads resets ctrl with the newest tree waiting on reloads, without
// blocking. Call it once per frame from the game loop. It reports whether a
// reset happened.
func ApplyReloads(ctrl *Controller, reloads <-chan *TreeNode) bool {
	var latest *TreeNode
drain:
	for {
		select {
		case root, ok := <-reloads:
			if !ok {
				break drain
			}
			latest = root
		default:
			break drain
		}
	}
	if latest == nil {
		return false
	}
	return ctrl.Reset(latest) == nil
}
