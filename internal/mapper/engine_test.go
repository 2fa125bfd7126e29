package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillaja/totalmapper/internal/keycode"
	"github.com/quillaja/totalmapper/internal/keyevent"
	"github.com/quillaja/totalmapper/internal/layout"
)

func mustIndex(t *testing.T, mappings []layout.CompiledMapping) *Index {
	t.Helper()
	idx, err := BuildIndex(layout.CompiledLayout{Mappings: mappings})
	require.NoError(t, err)
	return idx
}

func rule(from, to []keycode.Code, absorbing ...keycode.Code) layout.CompiledMapping {
	var abs map[keycode.Code]bool
	if len(absorbing) > 0 {
		abs = make(map[keycode.Code]bool, len(absorbing))
		for _, a := range absorbing {
			abs[a] = true
		}
	}
	return layout.CompiledMapping{From: from, To: to, Absorbing: abs}
}

func codes(cs ...keycode.Code) []keycode.Code { return cs }

// scenario 1: plain remap, A -> B.
func TestPlainRemap(t *testing.T) {
	idx := mustIndex(t, []layout.CompiledMapping{
		rule(codes(keycode.A), codes(keycode.B)),
	})
	e := New(idx)

	r := e.Step(keyevent.Pressed(keycode.A))
	assert.Equal(t, []keyevent.Event{keyevent.Pressed(keycode.B)}, r.Events)

	r = e.Step(keyevent.Released(keycode.A))
	assert.Equal(t, []keyevent.Event{keyevent.Released(keycode.B)}, r.Events)
}

// scenario 2: chord with a swallowed prefix key.
func TestChordWithSwallowedPrefix(t *testing.T) {
	idx := mustIndex(t, []layout.CompiledMapping{
		rule(codes(keycode.CAPSLOCK), codes()),
		rule(codes(keycode.CAPSLOCK, keycode.M), codes(keycode.LEFTSHIFT, keycode.EQUAL)),
		rule(codes(keycode.CAPSLOCK, keycode.U), codes(keycode.EQUAL)),
	})
	e := New(idx)

	r := e.Step(keyevent.Pressed(keycode.CAPSLOCK))
	assert.Empty(t, r.Events)

	r = e.Step(keyevent.Pressed(keycode.M))
	assert.Equal(t, []keyevent.Event{keyevent.Pressed(keycode.LEFTSHIFT), keyevent.Pressed(keycode.EQUAL)}, r.Events)

	r = e.Step(keyevent.Pressed(keycode.U))
	assert.Equal(t, []keyevent.Event{
		keyevent.Released(keycode.EQUAL), keyevent.Released(keycode.LEFTSHIFT), keyevent.Pressed(keycode.EQUAL),
	}, r.Events)
}

// scenario 4 (engine-observable half): custom repeat directives.
func TestCustomRepeatDirectives(t *testing.T) {
	idx := mustIndex(t, []layout.CompiledMapping{
		{From: codes(keycode.A), To: codes(keycode.A), Repeat: layout.CompiledRepeat{Kind: layout.CompiledRepeatDisabled}},
		{From: codes(keycode.B), To: codes(keycode.B), Repeat: layout.CompiledRepeat{
			Kind: layout.CompiledRepeatSpecial, Keys: codes(keycode.C), DelayMs: 130, IntervalMs: 30,
		}},
	})
	e := New(idx)

	e.Step(keyevent.Pressed(keycode.LEFTSHIFT))
	r := e.Step(keyevent.Pressed(keycode.A))
	assert.Equal(t, []keyevent.Event{keyevent.Pressed(keycode.A), keyevent.Released(keycode.A)}, r.Events)
	assert.Equal(t, RepeatDisabled, r.Repeat.Kind)

	r = e.Step(keyevent.Released(keycode.A))
	assert.Empty(t, r.Events)
	assert.Equal(t, RepeatNoChange, r.Repeat.Kind)

	r = e.Step(keyevent.Pressed(keycode.B))
	assert.Equal(t, []keyevent.Event{keyevent.Pressed(keycode.B), keyevent.Released(keycode.B)}, r.Events)
	require.Equal(t, RepeatRepeating, r.Repeat.Kind)
	assert.Equal(t, []keycode.Code{keycode.C}, r.Repeat.Keys)
	assert.Equal(t, 130, r.Repeat.DelayMs)
	assert.Equal(t, 30, r.Repeat.IntervalMs)

	r = e.Step(keyevent.Released(keycode.B))
	assert.Equal(t, RepeatDisabled, r.Repeat.Kind)
}

// scenario 5: absorbing a modifier used only to trigger a chord.
func TestAbsorbing(t *testing.T) {
	idx := mustIndex(t, []layout.CompiledMapping{
		rule(codes(keycode.LEFTSHIFT, keycode.A), codes(keycode.LEFTSHIFT, keycode.A), keycode.LEFTSHIFT),
	})
	e := New(idx)

	r := e.Step(keyevent.Pressed(keycode.LEFTSHIFT))
	assert.Equal(t, []keyevent.Event{keyevent.Pressed(keycode.LEFTSHIFT)}, r.Events)

	r = e.Step(keyevent.Pressed(keycode.A))
	assert.Equal(t, []keyevent.Event{keyevent.Pressed(keycode.A)}, r.Events)

	r = e.Step(keyevent.Pressed(keycode.B))
	assert.Equal(t, []keyevent.Event{
		keyevent.Released(keycode.A), keyevent.Released(keycode.LEFTSHIFT), keyevent.Pressed(keycode.B),
	}, r.Events)
}

func TestReleaseIsIdempotent(t *testing.T) {
	idx := mustIndex(t, []layout.CompiledMapping{
		rule(codes(keycode.A), codes(keycode.B)),
	})
	e := New(idx)

	e.Step(keyevent.Pressed(keycode.A))
	r := e.Step(keyevent.Released(keycode.A))
	assert.NotEmpty(t, r.Events)

	r = e.Step(keyevent.Released(keycode.A))
	assert.Empty(t, r.Events)
}

func TestReleaseAllLeavesNothingPressed(t *testing.T) {
	idx := mustIndex(t, []layout.CompiledMapping{
		rule(codes(keycode.LEFTSHIFT, keycode.A), codes(keycode.LEFTSHIFT, keycode.A), keycode.LEFTSHIFT),
	})
	e := New(idx)

	// Count every event sent downstream, including those of the presses
	// before ReleaseAll, so each Pressed can be matched to its Released.
	var events []keyevent.Event
	events = append(events, e.Step(keyevent.Pressed(keycode.LEFTSHIFT)).Events...)
	events = append(events, e.Step(keyevent.Pressed(keycode.A)).Events...)
	events = append(events, e.Step(keyevent.Pressed(keycode.B)).Events...)

	events = append(events, e.ReleaseAll()...)
	pressed := map[keycode.Code]int{}
	for _, ev := range events {
		if ev.Pressed {
			pressed[ev.Code]++
		} else {
			pressed[ev.Code]--
		}
	}
	for k, n := range pressed {
		assert.Zero(t, n, "key %s left in an inconsistent press count", k)
	}
	assert.Zero(t, e.inputPressed.Len())
}

func TestUnmappedInputPassesThroughUnchanged(t *testing.T) {
	idx := mustIndex(t, []layout.CompiledMapping{
		rule(codes(keycode.A), codes(keycode.B)),
	})
	e := New(idx)

	r := e.Step(keyevent.Pressed(keycode.X))
	assert.Equal(t, []keyevent.Event{keyevent.Pressed(keycode.X)}, r.Events)

	r = e.Step(keyevent.Released(keycode.X))
	assert.Equal(t, []keyevent.Event{keyevent.Released(keycode.X)}, r.Events)
}

func TestDuplicateFromFailsIndexBuild(t *testing.T) {
	_, err := BuildIndex(layout.CompiledLayout{Mappings: []layout.CompiledMapping{
		{From: codes(keycode.A, keycode.A), To: codes(keycode.B)},
	}})
	assert.Error(t, err)
}
