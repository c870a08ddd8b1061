package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls fn once and then again every time the named file is created or
// written, until ctx is done. It watches the file's directory, as editors
// tend to replace files instead of writing them in place.
func watch(ctx context.Context, name string, fn func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(name)); err != nil {
		return err
	}
	name = filepath.Clean(name)

	fn()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				fn()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
