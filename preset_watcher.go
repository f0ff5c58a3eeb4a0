package editorui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

const presetOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// PresetWatcher reports changes to the *.json files of a preset directory.
// Events are queued by fsnotify and drained by Poll on the caller's thread.
type PresetWatcher struct {
	dir     string
	watcher *fsnotify.Watcher
}

// NewPresetWatcher watches dir, creating it if it does not exist.
func NewPresetWatcher(dir string) (*PresetWatcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating preset directory: %w", err)
	}
	fsw, err := fsnotify.NewBufferedWatcher(64)
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	return &PresetWatcher{dir: dir, watcher: fsw}, nil
}

// Dir returns the watched directory.
func (w *PresetWatcher) Dir() string { return w.dir }

// Poll drains pending events without blocking and reports whether any
// preset file was created, written, removed or renamed.
func (w *PresetWatcher) Poll() bool {
	changed := false
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return changed
			}
			if filepath.Ext(ev.Name) == ".json" && ev.Op&presetOps != 0 {
				changed = true
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return changed
			}
			logger().Warn("preset watcher error", "dir", w.dir, "error", err)
		default:
			return changed
		}
	}
}

// Close stops watching.
func (w *PresetWatcher) Close() error {
	return w.watcher.Close()
}
