package config

import (
	"os"
	"time"
)

// Watcher polls the config file's modification time and triggers a callback
// on change. It uses only the standard library; a polling interval of a few
// seconds is plenty for config reloads.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func(string)
	stopCh   chan struct{}
	last     time.Time
}

// NewWatcher creates a watcher for the given path and interval.
func NewWatcher(path string, interval time.Duration, onChange func(string)) *Watcher {
	return &Watcher{
		path:     path,
		interval: interval,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}
}

// Start begins polling in a goroutine.
func (w *Watcher) Start() {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		w.scan() // prime mtime cache
		for {
			select {
			case <-ticker.C:
				w.scan()
			case <-w.stopCh:
				return
			}
		}
	}()
}

// Stop terminates the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
}

func (w *Watcher) scan() {
	fi, err := os.Stat(w.path)
	if err != nil {
		// file may appear later; keep polling
		return
	}
	mt := fi.ModTime()
	if w.last.IsZero() {
		w.last = mt
		return
	}
	if mt.After(w.last) {
		w.last = mt
		if w.onChange != nil {
			w.onChange(w.path)
		}
	}
}
