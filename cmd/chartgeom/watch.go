// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchLag is how long the files must stay unchanged before an update.
const watchLag = 100 * time.Millisecond

// watch calls update once one of the files has been written, created
// or replaced and then left alone for [watchLag], until ctx is done.
// The parent directories are watched so that editors replacing a file
// by rename are seen too.
func watch(ctx context.Context, files []string, update func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, fn := range files {
		abs, err := filepath.Abs(fn)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	settle := time.NewTimer(watchLag)
	settle.Stop()
	defer settle.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-settle.C:
			update()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("changed", "file", event.Name, "op", event.Op)
			settle.Reset(watchLag)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error(err.Error())
		}
	}
}
