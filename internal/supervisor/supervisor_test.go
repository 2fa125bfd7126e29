package supervisor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillaja/totalmapper/internal/enumerate"
)

func TestReconcileSpawnsNewAndSkipsExcludedAndAlreadyRunning(t *testing.T) {
	var mu sync.Mutex
	spawned := map[string]int{}

	s := New(nil, func(kb enumerate.Keyboard) (func(), error) {
		mu.Lock()
		spawned[kb.Path]++
		mu.Unlock()
		return func() {}, nil
	})
	s.enumerate = func([]string) ([]enumerate.Keyboard, error) {
		return []enumerate.Keyboard{
			{Name: "kb1", Path: "/dev/input/event0"},
			{Name: "kb2", Path: "/dev/input/event1", Excluded: true},
		}, nil
	}

	require.NoError(t, s.reconcile())
	require.NoError(t, s.reconcile()) // second pass must not respawn

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, spawned["/dev/input/event0"])
	assert.Equal(t, 0, spawned["/dev/input/event1"])
}

func TestReapRemovesDoneWorkers(t *testing.T) {
	s := New(nil, func(kb enumerate.Keyboard) (func(), error) { return func() {}, nil })
	s.enumerate = func([]string) ([]enumerate.Keyboard, error) {
		return []enumerate.Keyboard{{Name: "kb1", Path: "/dev/input/event0"}}, nil
	}

	require.NoError(t, s.reconcile())
	require.Len(t, s.workers, 1)

	s.MarkDone("/dev/input/event0")
	s.reap()
	assert.Empty(t, s.workers)
}

func TestReconcileRespawnsAfterReap(t *testing.T) {
	var spawnCount int
	s := New(nil, func(kb enumerate.Keyboard) (func(), error) {
		spawnCount++
		return func() {}, nil
	})
	s.enumerate = func([]string) ([]enumerate.Keyboard, error) {
		return []enumerate.Keyboard{{Name: "kb1", Path: "/dev/input/event0"}}, nil
	}

	require.NoError(t, s.reconcile())
	s.MarkDone("/dev/input/event0")
	require.NoError(t, s.reconcile())

	assert.Equal(t, 2, spawnCount)
}

func TestStopAllStopsEveryWorker(t *testing.T) {
	var stopped int
	var mu sync.Mutex
	s := New(nil, func(kb enumerate.Keyboard) (func(), error) {
		return func() { mu.Lock(); stopped++; mu.Unlock() }, nil
	})
	s.enumerate = func([]string) ([]enumerate.Keyboard, error) {
		return []enumerate.Keyboard{
			{Name: "kb1", Path: "/dev/input/event0"},
			{Name: "kb2", Path: "/dev/input/event1"},
		}, nil
	}

	require.NoError(t, s.reconcile())
	s.stopAll()

	assert.Equal(t, 2, stopped)
	assert.Empty(t, s.workers)
}
