package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DevDirEnv names a directory whose settings files override the embedded
// ones and are reloaded when they change.
const DevDirEnv = "RIFTLINE_DEV_DIR"

const reloadDebounce = 100 * time.Millisecond

// Watcher reports changed settings files.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSettingsFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSettingsFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// WatchDimensions loads dir/dimensions.yaml when present and reloads it on
// every change until the watcher is closed. Bad edits are logged and the
// previous settings stay active.
func WatchDimensions(dir string) (*Watcher, error) {
	path := filepath.Join(dir, DimensionsFile)
	if _, err := os.Stat(path); err == nil {
		if err := LoadDimensionsFile(path); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	w, err := NewWatcher(dir)
	if err != nil {
		return nil, err
	}

	reload := func() {
		if err := LoadDimensionsFile(path); err != nil {
			log.Printf("Warning: Could not reload dimensions: %v", err)
			return
		}
		log.Printf("Reloaded %s", path)
	}

	go func() {
		// editors write in several steps, so reload once things settle
		var pending *time.Timer
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					if pending != nil {
						pending.Stop()
					}
					return
				}
				if filepath.Base(name) != DimensionsFile {
					continue
				}
				if pending != nil {
					pending.Stop()
				}
				pending = time.AfterFunc(reloadDebounce, reload)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: settings watcher: %v", err)
			}
		}
	}()
	return w, nil
}

// StartDevReload watches the directory named by DevDirEnv. It returns nil
// when the variable is unset.
func StartDevReload() *Watcher {
	dir := os.Getenv(DevDirEnv)
	if dir == "" {
		return nil
	}
	w, err := WatchDimensions(dir)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", dir, err)
		return nil
	}
	log.Printf("Watching %s for settings changes", dir)
	return w
}
