// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration file on change using fsnotify and
//              hands every result to a callback.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Polling watcher
// - 2026-10-16 v0.2.0: fsnotify watcher with debounce and context

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/boundstr/foundation/core/error"
)

// DebounceDelay is how long the file must stay quiet before it is reloaded
var DebounceDelay = 100 * time.Millisecond

// ChangeHandler receives the freshly loaded settings, or the error that
// prevented loading them
type ChangeHandler func(settings *Settings, err error)

// Watch blocks until ctx is done, reloading path each time it is written or
// recreated. The containing directory is watched so that editors which
// replace the file by renaming are noticed.
func Watch(ctx context.Context, path string, handler ChangeHandler) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch")
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", path)
	}

	var (
		timer  *time.Timer
		reload <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(DebounceDelay)
			} else {
				timer.Reset(DebounceDelay)
			}
			reload = timer.C

		case <-reload:
			reload = nil
			handler(Load(path))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			handler(nil, mdwerror.Wrap(err, "watcher error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Watch"))
		}
	}
}
