package remaploop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillaja/totalmapper/internal/device"
	"github.com/quillaja/totalmapper/internal/keycode"
	"github.com/quillaja/totalmapper/internal/keyevent"
	"github.com/quillaja/totalmapper/internal/layout"
	"github.com/quillaja/totalmapper/internal/mapper"
)

// fakeKeyReader replays a canned event queue, reporting Busy once drained.
type fakeKeyReader struct {
	events []keyevent.Event
	ended  bool
}

func (f *fakeKeyReader) Next() (keyevent.Event, error) {
	if len(f.events) == 0 {
		if f.ended {
			return keyevent.Event{}, device.ErrEnded
		}
		return keyevent.Event{}, device.ErrBusy
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeKeyReader) Fd() int { return -1 }

// fakeSwitchReader replays a canned on/off queue.
type fakeSwitchReader struct {
	states []bool
}

func (f *fakeSwitchReader) Next() (bool, error) {
	if len(f.states) == 0 {
		return false, device.ErrBusy
	}
	s := f.states[0]
	f.states = f.states[1:]
	return s, nil
}

func (f *fakeSwitchReader) Fd() int { return -1 }

// fakeSender records every event batch it was asked to write.
type fakeSender struct {
	batches [][]keyevent.Event
}

func (f *fakeSender) Send(events []keyevent.Event) error {
	f.batches = append(f.batches, append([]keyevent.Event{}, events...))
	return nil
}

func testEngine(t *testing.T) *mapper.Engine {
	t.Helper()
	idx, err := mapper.BuildIndex(layout.CompiledLayout{Mappings: []layout.CompiledMapping{
		{From: []keycode.Code{keycode.A}, To: []keycode.Code{keycode.B}},
	}})
	require.NoError(t, err)
	return mapper.New(idx)
}

func TestDrainKeyboardFeedsEngineAndSends(t *testing.T) {
	kb := &fakeKeyReader{events: []keyevent.Event{keyevent.Pressed(keycode.A), keyevent.Released(keycode.A)}}
	sender := &fakeSender{}
	l := &Loop{DevicePath: "test", keyboard: kb, writer: sender, engine: testEngine(t)}

	end, err := l.drainKeyboard()
	require.NoError(t, err)
	assert.False(t, end)
	require.Len(t, sender.batches, 2)
	assert.Equal(t, []keyevent.Event{keyevent.Pressed(keycode.B)}, sender.batches[0])
	assert.Equal(t, []keyevent.Event{keyevent.Released(keycode.B)}, sender.batches[1])
}

func TestDrainKeyboardReportsEnd(t *testing.T) {
	kb := &fakeKeyReader{ended: true}
	l := &Loop{DevicePath: "test", keyboard: kb, writer: &fakeSender{}, engine: testEngine(t)}

	end, err := l.drainKeyboard()
	require.NoError(t, err)
	assert.True(t, end)
}

func TestDrainKeyboardSkippedInTabletMode(t *testing.T) {
	kb := &fakeKeyReader{events: []keyevent.Event{keyevent.Pressed(keycode.A)}}
	sender := &fakeSender{}
	l := &Loop{DevicePath: "test", keyboard: kb, writer: sender, engine: testEngine(t), inTabletMode: true}

	_, err := l.drainKeyboard()
	require.NoError(t, err)
	assert.Empty(t, sender.batches)
}

func TestDrainTabletSwitchesModeAndReleasesAll(t *testing.T) {
	kb := &fakeKeyReader{}
	sender := &fakeSender{}
	engine := testEngine(t)
	l := &Loop{DevicePath: "test", keyboard: kb, writer: sender, tablet: &fakeSwitchReader{states: []bool{true}}, engine: engine}

	engine.Step(keyevent.Pressed(keycode.A))
	sender.batches = nil // discard the setup press

	require.NoError(t, l.drainTablet())
	assert.True(t, l.inTabletMode)
	assert.Equal(t, repeatIdle, l.state)
	require.Len(t, sender.batches, 1)
	assert.Equal(t, []keyevent.Event{keyevent.Released(keycode.B)}, sender.batches[0])
}

func TestWaitTimeoutIdleIsNoTimeout(t *testing.T) {
	l := &Loop{state: repeatIdle}
	assert.Equal(t, time.Duration(-1), l.waitTimeout())
}

func TestWaitTimeoutRepeatingClampsToOneMillisecond(t *testing.T) {
	l := &Loop{state: repeatRepeating, nextWakeup: time.Now().Add(-time.Hour)}
	assert.Equal(t, time.Millisecond, l.waitTimeout())
}

func TestWaitTimeoutRepeatingReturnsRemainingDuration(t *testing.T) {
	l := &Loop{state: repeatRepeating, nextWakeup: time.Now().Add(100 * time.Millisecond)}
	d := l.waitTimeout()
	assert.Greater(t, d, 50*time.Millisecond)
	assert.LessOrEqual(t, d, 100*time.Millisecond)
}

func TestApplyRepeatDirectiveTransitions(t *testing.T) {
	l := &Loop{}

	l.applyRepeatDirective(mapper.RepeatDirective{Kind: mapper.RepeatRepeating, Keys: []keycode.Code{keycode.C}, DelayMs: 50, IntervalMs: 10})
	assert.Equal(t, repeatRepeating, l.state)
	assert.Equal(t, []keycode.Code{keycode.C}, l.repeatKeys)
	assert.Equal(t, 10, l.intervalMs)

	l.applyRepeatDirective(mapper.RepeatDirective{Kind: mapper.RepeatDisabled})
	assert.Equal(t, repeatIdle, l.state)
}

func TestHandleTimeoutEmitsPressThenReverseRelease(t *testing.T) {
	sender := &fakeSender{}
	l := &Loop{writer: sender, engine: testEngine(t), state: repeatRepeating,
		repeatKeys: []keycode.Code{keycode.A, keycode.B}, intervalMs: 20, nextWakeup: time.Now()}

	require.NoError(t, l.handleTimeout())
	require.Len(t, sender.batches, 1)
	assert.Equal(t, []keyevent.Event{
		keyevent.Pressed(keycode.A), keyevent.Pressed(keycode.B),
		keyevent.Released(keycode.B), keyevent.Released(keycode.A),
	}, sender.batches[0])
}

func TestHandleTimeoutGoesIdleInTabletMode(t *testing.T) {
	sender := &fakeSender{}
	l := &Loop{writer: sender, engine: testEngine(t), state: repeatRepeating,
		repeatKeys: []keycode.Code{keycode.A}, inTabletMode: true}

	require.NoError(t, l.handleTimeout())
	assert.Equal(t, repeatIdle, l.state)
	assert.Empty(t, sender.batches)
}
