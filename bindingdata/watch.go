package bindingdata

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Quiet period before a changed file is reported
const debounce = 100 * time.Millisecond

// Watcher reports binding files that changed in the watched directories.
// Events carries the changed path; the game loop drains it and reloads.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchFile watches the directory holding path and only reports path itself.
// Editors that save by rename keep working because the directory is watched.
func WatchFile(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return newWatcher(func(name string) bool {
		n, err := filepath.Abs(name)
		return err == nil && n == abs
	}, filepath.Dir(abs))
}

func newWatcher(match func(string) bool, dirs ...string) (*Watcher, error) {
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
	go watcher.run(match)
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

func (w *Watcher) run(match func(string) bool) {
	defer close(w.Events)
	defer close(w.Errors)

	// A path is reported once it has been quiet for debounce, so a save
	// that truncates and then writes is seen as a single change
	pending := make(map[string]time.Time)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !match(event.Name) {
				continue
			}
			pending[event.Name] = time.Now()
			if timer == nil {
				timer = time.NewTimer(debounce)
				fire = timer.C
			}
		case now := <-fire:
			for name, t := range pending {
				if now.Sub(t) < debounce {
					continue
				}
				delete(pending, name)
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if len(pending) > 0 {
				timer.Reset(debounce)
			} else {
				timer, fire = nil, nil
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
