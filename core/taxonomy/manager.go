package taxonomy

import (
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// Store Manager
// =============================================================================
//
// The manager owns the current store reference for long-lived callers. The
// store itself is immutable; a reload builds a complete replacement store and
// swaps the pointer atomically, so readers always see a fully-populated,
// internally consistent snapshot. A failed reload leaves the previous store
// in place.

// DefaultReloadDebounce is the interval to wait after a file event before
// reloading, coalescing editor write bursts into a single reload.
const DefaultReloadDebounce = 250 * time.Millisecond

// Manager holds the live store for a taxonomy file and optionally watches
// the file for changes.
type Manager struct {
	path     string
	storePtr atomic.Pointer[Store]
	logger   *slog.Logger

	watcherMu sync.RWMutex
	watchers  []func(*Store)

	debounce  time.Duration
	stopWatch chan struct{}
	watchOnce sync.Once
}

// NewManager creates a manager for the taxonomy file at path and performs
// the initial load. Load failure is fatal: no manager is returned.
func NewManager(path string, logger *slog.Logger) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Manager{
		path:      path,
		logger:    logger,
		debounce:  DefaultReloadDebounce,
		stopWatch: make(chan struct{}),
	}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Store returns the current store snapshot.
func (m *Manager) Store() *Store {
	return m.storePtr.Load()
}

// Reload builds a fresh store from the taxonomy file and swaps it in. On
// failure the previous store remains current.
func (m *Manager) Reload() error {
	store, err := Load(m.path)
	if err != nil {
		return err
	}

	m.storePtr.Store(store)
	m.logger.Info("taxonomy store loaded",
		"path", m.path,
		"store_id", store.ID().String(),
		"skills", store.Len())

	m.notifyWatchers(store)
	return nil
}

// OnSwap registers a callback invoked with the new store after every
// successful reload.
func (m *Manager) OnSwap(fn func(*Store)) {
	m.watcherMu.Lock()
	m.watchers = append(m.watchers, fn)
	m.watcherMu.Unlock()
}

func (m *Manager) notifyWatchers(store *Store) {
	m.watcherMu.RLock()
	watchers := m.watchers
	m.watcherMu.RUnlock()

	for _, fn := range watchers {
		fn(store)
	}
}

// Watch monitors the taxonomy file and reloads on writes. Events are
// debounced so editor write bursts trigger a single reload. Watch returns
// after starting the background loop; Close stops it.
func (m *Manager) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory rather than the file: many editors replace the
	// file on save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(m.path)); err != nil {
		watcher.Close()
		return err
	}

	go m.watchLoop(watcher)
	return nil
}

func (m *Manager) watchLoop(watcher *fsnotify.Watcher) {
	defer watcher.Close()

	var timer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !m.isReloadEvent(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(m.debounce, func() {
				if err := m.Reload(); err != nil {
					m.logger.Error("taxonomy reload failed, keeping previous store",
						"path", m.path, "error", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			m.logger.Warn("taxonomy watch error", "error", err)

		case <-m.stopWatch:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (m *Manager) isReloadEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(m.path) {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

// Close stops the watch loop, if one is running.
func (m *Manager) Close() error {
	m.watchOnce.Do(func() {
		close(m.stopWatch)
	})
	return nil
}
