// Package supervisor implements the auto-attach supervisor: it watches
// /dev/input for device changes, keeps a worker running for every
// currently-mapped keyboard, and reaps workers whose device disappeared.
package supervisor

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/quillaja/totalmapper/internal/enumerate"
	"github.com/quillaja/totalmapper/internal/logging"
)

// Spawner starts a worker for one keyboard device and returns a function
// to stop it. It is called once per newly discovered device.
type Spawner func(kb enumerate.Keyboard) (stop func(), err error)

type worker struct {
	stop func()
	done chan struct{}
}

// Supervisor owns the (device path -> worker) table described in spec §4.6.
type Supervisor struct {
	excludePatterns []string
	spawn           Spawner
	enumerate       func(excludePatterns []string) ([]enumerate.Keyboard, error)

	mu      sync.Mutex
	workers map[string]*worker
}

// New builds a supervisor that spawns workers via spawn, applying
// excludePatterns to every enumeration pass.
func New(excludePatterns []string, spawn Spawner) *Supervisor {
	return &Supervisor{
		excludePatterns: excludePatterns,
		spawn:           spawn,
		enumerate:       enumerate.List,
		workers:         make(map[string]*worker),
	}
}

// Run opens a directory-change notifier on /dev/input and loops: reap,
// enumerate, spawn, wait for the next change. It runs until stop is
// closed or the notifier fails.
func (s *Supervisor) Run(stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("supervisor: new watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add("/dev/input"); err != nil {
		return fmt.Errorf("supervisor: watch /dev/input: %w", err)
	}

	if err := s.reconcile(); err != nil {
		logging.Logger.Error().Err(err).Msg("initial enumeration failed")
	}

	for {
		select {
		case <-stop:
			s.stopAll()
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Error().Err(err).Msg("supervisor notifier error")
		case _, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if err := s.reconcile(); err != nil {
				logging.Logger.Error().Err(err).Msg("enumeration failed")
			}
		}
	}
}

// reconcile implements one pass of the supervisor's 4-step loop body
// (steps 1-3; step 4's wait lives in Run's select).
func (s *Supervisor) reconcile() error {
	s.reap()

	keyboards, err := s.enumerate(s.excludePatterns)
	if err != nil {
		return fmt.Errorf("supervisor: enumerate: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, kb := range keyboards {
		if kb.Excluded {
			continue
		}
		if _, already := s.workers[kb.Path]; already {
			continue
		}
		stop, err := s.spawn(kb)
		if err != nil {
			logging.Logger.Error().Err(err).Str("device", kb.Path).Msg("failed to spawn worker")
			continue
		}
		s.workers[kb.Path] = &worker{stop: stop, done: make(chan struct{})}
		logging.Logger.Info().Str("device", kb.Path).Str("name", kb.Name).Msg("attached keyboard")
	}
	return nil
}

// MarkDone lets a worker report that its device is gone, so the next
// reconcile pass reaps it and a later reappearance can spawn it again.
func (s *Supervisor) MarkDone(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.workers[path]; ok {
		close(w.done)
	}
}

func (s *Supervisor) reap() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for path, w := range s.workers {
		select {
		case <-w.done:
			delete(s.workers, path)
		default:
		}
	}
}

func (s *Supervisor) stopAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for path, w := range s.workers {
		w.stop()
		delete(s.workers, path)
	}
}
