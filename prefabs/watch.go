package prefabs

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports edited prefab and script files. Events carries file paths;
// the game drains it from its own update loop. Channels stay open after
// Close.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// DefaultWatchDirs are the on-disk prefab directories that hot reload
// watches.
func DefaultWatchDirs() []string {
	return []string{"prefabs", filepath.Join("prefabs", "profiles"), filepath.Join("prefabs", "scripts")}
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	pending := newSettle(watchDebounce)
	timer := time.NewTimer(watchDebounce)
	timer.Stop()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			pending.touch(event.Name, time.Now())
			timer.Reset(watchDebounce)

		case now := <-timer.C:
			names, wait := pending.ready(now)
			for _, name := range names {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			if wait > 0 {
				timer.Reset(wait)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}

// settle holds changed files until each has been quiet for the window, so
// an editor writing a file in several steps yields one event.
type settle struct {
	window time.Duration
	due    map[string]time.Time
}

func newSettle(window time.Duration) *settle {
	return &settle{window: window, due: make(map[string]time.Time)}
}

func (s *settle) touch(name string, now time.Time) {
	s.due[name] = now.Add(s.window)
}

// ready removes and returns the settled names in order, plus how long until
// the next pending one settles (0 when none are left).
func (s *settle) ready(now time.Time) ([]string, time.Duration) {
	var (
		out  []string
		wait time.Duration
	)
	for name, due := range s.due {
		if !now.Before(due) {
			out = append(out, name)
			delete(s.due, name)
			continue
		}
		if d := due.Sub(now); wait == 0 || d < wait {
			wait = d
		}
	}
	sort.Strings(out)
	return out, wait
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return isSpecFile(event.Name) || isScriptFile(event.Name)
}

func isSpecFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func isScriptFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".tengo")
}
