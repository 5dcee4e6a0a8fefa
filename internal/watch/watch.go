// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package watch reloads a matrix file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/gogpu/matshow"
)

// Watch reloads the matrix at path after every change and sends it on the
// returned channel. Changes closer together than debounce are coalesced
// into one reload. A reload that fails to load or parse is logged and
// skipped, and so is an empty file.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file are picked up.
//
// The channel is closed after ctx is cancelled and the watcher is released.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan matshow.Matrix, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan matshow.Matrix)
	w := &watcher{
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
		out:      out,
		log:      matshow.Logger().Named("watch"),
	}
	go w.run(ctx)

	w.log.Info("watching", zap.String("path", abs), zap.Duration("debounce", debounce))
	return out, nil
}

type watcher struct {
	path     string
	debounce time.Duration
	fsw      *fsnotify.Watcher
	out      chan matshow.Matrix
	log      *zap.Logger
}

func (w *watcher) run(ctx context.Context) {
	defer close(w.out)
	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.log.Warn("close watcher", zap.Error(err))
		}
	}()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("change", zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			m, err := matshow.Load(w.path)
			if err != nil {
				w.log.Warn("reload skipped", zap.Error(err))
				continue
			}
			if len(m) == 0 {
				// Truncated mid-save; the next write brings the content.
				w.log.Debug("reload skipped: empty file")
				continue
			}
			w.log.Info("reloaded", zap.Int("rows", m.Rows()))
			select {
			case w.out <- m:
			case <-ctx.Done():
				return
			}
		}
	}
}

// relevant reports whether ev may have changed the contents of the file.
func (w *watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
