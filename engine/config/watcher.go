package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/hubastard/bumpslider/engine/colors"
)

var log = logrus.WithField("component", "config")

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 50 * time.Millisecond

// ThemeWatcher reloads a theme file whenever it changes on disk. Reloaded
// themes are handed over through Updates so the UI thread can apply them.
type ThemeWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *colors.Theme
	done    chan struct{}
	wg      sync.WaitGroup
}

// WatchTheme starts watching path. The parent directory is watched so
// editors that replace the file on save are handled too.
func WatchTheme(path string) (*ThemeWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch theme: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch theme: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch theme %s: %w", path, err)
	}
	tw := &ThemeWatcher{
		path:    abs,
		watcher: w,
		updates: make(chan *colors.Theme, 1),
		done:    make(chan struct{}),
	}
	tw.wg.Add(1)
	go tw.run()
	return tw, nil
}

// Updates delivers reloaded themes. Only the latest unread theme is kept.
func (tw *ThemeWatcher) Updates() <-chan *colors.Theme { return tw.updates }

// Poll returns a reloaded theme if one is waiting.
func (tw *ThemeWatcher) Poll() (*colors.Theme, bool) {
	select {
	case t := <-tw.updates:
		return t, true
	default:
		return nil, false
	}
}

func (tw *ThemeWatcher) Close() error {
	close(tw.done)
	err := tw.watcher.Close()
	tw.wg.Wait()
	return err
}

func (tw *ThemeWatcher) run() {
	defer tw.wg.Done()
	var timer <-chan time.Time
	for {
		select {
		case <-tw.done:
			return
		case ev, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != tw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer = time.After(reloadDelay)
			}
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("theme watcher")
		case <-timer:
			timer = nil
			tw.reload()
		}
	}
}

func (tw *ThemeWatcher) reload() {
	t, err := colors.LoadTheme(tw.path)
	if err != nil {
		log.WithError(err).WithField("path", tw.path).Warn("theme reload failed")
		return
	}
	log.WithFields(logrus.Fields{"path": tw.path, "theme": t.Name}).Info("theme reloaded")
	// drop a stale unread theme in favor of this one
	select {
	case <-tw.updates:
	default:
	}
	tw.updates <- t
}
