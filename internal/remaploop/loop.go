// Package remaploop runs the per-device event loop: a single-threaded
// cooperative scheduler multiplexing a keyboard reader, an optional
// tablet-mode switch reader, and a custom-repeat timer, feeding the
// keyboard stream through a mapper.Engine and writing its output through
// a synthetic device.
package remaploop

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"github.com/quillaja/totalmapper/internal/device"
	"github.com/quillaja/totalmapper/internal/keycode"
	"github.com/quillaja/totalmapper/internal/keyevent"
	"github.com/quillaja/totalmapper/internal/logging"
	"github.com/quillaja/totalmapper/internal/mapper"
)

// repeatState is the loop's private mirror of the spec's working_repeat.
type repeatState int

const (
	repeatIdle repeatState = iota
	repeatRepeating
)

// keyReader is the subset of device.Reader the loop depends on, narrowed
// to an interface so tests can drive the loop without a real /dev/input
// file descriptor.
type keyReader interface {
	Next() (keyevent.Event, error)
	Fd() int
}

// switchReader is the subset of device.SwitchReader the loop depends on.
type switchReader interface {
	Next() (bool, error)
	Fd() int
}

// eventSender is the subset of device.Writer the loop depends on.
type eventSender interface {
	Send(events []keyevent.Event) error
}

// Loop owns one keyboard device's reader, writer, optional tablet-mode
// switch reader, and engine. It is not safe for concurrent use.
type Loop struct {
	DevicePath string

	keyboard keyReader
	writer   eventSender
	tablet   switchReader
	engine   *mapper.Engine

	state        repeatState
	repeatKeys   []keycode.Code
	intervalMs   int
	nextWakeup   time.Time
	inTabletMode bool
}

// New builds a loop around an already-opened keyboard reader/writer and an
// engine. tablet may be nil when the device has no tablet-mode switch.
func New(path string, keyboard *device.Reader, writer *device.Writer, tablet *device.SwitchReader, engine *mapper.Engine) *Loop {
	l := &Loop{
		DevicePath: path,
		keyboard:   keyboard,
		writer:     writer,
		engine:     engine,
	}
	// Assign only when non-nil: storing a nil *SwitchReader in the
	// switchReader interface field would make `l.tablet != nil` true.
	if tablet != nil {
		l.tablet = tablet
	}
	return l
}

// Run drives the loop until the keyboard reader reports End (device gone)
// or stop is closed; stop is checked between waits, not during one. It
// never returns a non-nil error for a graceful
// device-removal exit.
func (l *Loop) Run(stop <-chan struct{}) error {
	backoff := time.Second

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		timeout := l.waitTimeout()
		ready, timedOut, err := l.poll(timeout)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				logging.Logger.Debug().Str("device", l.DevicePath).Dur("backoff", backoff).
					Msg("interrupted wait, retrying")
				time.Sleep(backoff)
				backoff *= 2
				if backoff > 30*time.Second {
					backoff = 30 * time.Second
				}
				continue
			}
			return fmt.Errorf("remaploop: poll %s: %w", l.DevicePath, err)
		}
		backoff = time.Second

		if timedOut {
			if err := l.handleTimeout(); err != nil {
				return err
			}
			continue
		}

		end, err := l.drainReady(ready)
		if err != nil {
			return err
		}
		if end {
			return nil
		}
	}
}

// waitTimeout computes the poll timeout: no timeout while idle, else the
// duration until next_wakeup (clamped to at least 1ms).
func (l *Loop) waitTimeout() time.Duration {
	if l.state != repeatRepeating {
		return -1
	}
	d := time.Until(l.nextWakeup)
	if d < time.Millisecond {
		return time.Millisecond
	}
	return d
}

type readySet struct {
	keyboard bool
	tablet   bool
}

// poll waits on the keyboard and optional tablet-switch descriptors.
func (l *Loop) poll(timeout time.Duration) (ready readySet, timedOut bool, err error) {
	fds := []unix.PollFd{{Fd: int32(l.keyboard.Fd()), Events: unix.POLLIN}}
	var tabletIdx = -1
	if l.tablet != nil {
		tabletIdx = len(fds)
		fds = append(fds, unix.PollFd{Fd: int32(l.tablet.Fd()), Events: unix.POLLIN})
	}

	ms := -1
	if timeout >= 0 {
		ms = int(timeout / time.Millisecond)
	}

	n, err := unix.Poll(fds, ms)
	if err != nil {
		return readySet{}, false, err
	}
	if n == 0 {
		return readySet{}, true, nil
	}

	ready.keyboard = fds[0].Revents&unix.POLLIN != 0
	if tabletIdx >= 0 {
		ready.tablet = fds[tabletIdx].Revents&unix.POLLIN != 0
	}
	return ready, false, nil
}

// handleTimeout implements the "Timed out" branch of the main step: emit
// a repeat burst, or drop to idle if tablet mode engaged meanwhile.
func (l *Loop) handleTimeout() error {
	if l.state != repeatRepeating {
		return nil
	}
	if l.inTabletMode {
		l.state = repeatIdle
		return nil
	}

	var events []keyevent.Event
	for _, k := range l.repeatKeys {
		events = append(events, keyevent.Pressed(k))
	}
	for i := len(l.repeatKeys) - 1; i >= 0; i-- {
		events = append(events, keyevent.Released(l.repeatKeys[i]))
	}
	l.nextWakeup = l.nextWakeup.Add(time.Duration(l.intervalMs) * time.Millisecond)

	return l.send(events)
}

// drainReady handles one or both ready descriptors, draining each until
// Busy. Returns end=true when the keyboard reader reports the device is
// gone.
func (l *Loop) drainReady(ready readySet) (end bool, err error) {
	if ready.tablet {
		if err := l.drainTablet(); err != nil {
			return false, err
		}
	}
	if ready.keyboard {
		return l.drainKeyboard()
	}
	return false, nil
}

func (l *Loop) drainKeyboard() (end bool, err error) {
	for {
		ev, err := l.keyboard.Next()
		if err != nil {
			if errors.Is(err, device.ErrBusy) {
				return false, nil
			}
			if errors.Is(err, device.ErrEnded) {
				logging.Logger.Info().Str("device", l.DevicePath).Msg("device removed")
				return true, nil
			}
			return false, fmt.Errorf("remaploop: read %s: %w", l.DevicePath, err)
		}

		if l.inTabletMode {
			continue
		}

		result := l.engine.Step(ev)
		if err := l.send(result.Events); err != nil {
			return false, err
		}
		l.applyRepeatDirective(result.Repeat)
	}
}

func (l *Loop) drainTablet() error {
	for {
		on, err := l.tablet.Next()
		if err != nil {
			if errors.Is(err, device.ErrBusy) {
				return nil
			}
			if errors.Is(err, device.ErrEnded) {
				l.tablet = nil
				return nil
			}
			return fmt.Errorf("remaploop: read tablet switch %s: %w", l.DevicePath, err)
		}

		l.inTabletMode = on
		l.state = repeatIdle
		if err := l.send(l.engine.ReleaseAll()); err != nil {
			return err
		}
	}
}

func (l *Loop) applyRepeatDirective(d mapper.RepeatDirective) {
	switch d.Kind {
	case mapper.RepeatDisabled:
		l.state = repeatIdle
	case mapper.RepeatNoChange:
		// unchanged
	case mapper.RepeatRepeating:
		l.state = repeatRepeating
		l.repeatKeys = d.Keys
		l.intervalMs = d.IntervalMs
		l.nextWakeup = time.Now().Add(time.Duration(d.DelayMs) * time.Millisecond)
	}
}

func (l *Loop) send(events []keyevent.Event) error {
	if len(events) == 0 {
		return nil
	}
	if err := l.writer.Send(events); err != nil {
		return fmt.Errorf("remaploop: write %s: %w", l.DevicePath, err)
	}
	return nil
}

type closer interface{ Close() error }

// Close releases the loop's reader/writer/switch handles.
func (l *Loop) Close() {
	if c, ok := l.keyboard.(closer); ok {
		c.Close()
	}
	if c, ok := l.writer.(closer); ok {
		c.Close()
	}
	if c, ok := l.tablet.(closer); ok {
		c.Close()
	}
}

// Shutdown releases every currently-mapped key and sends the resulting
// events through the writer, for use when a worker is being torn down
// deliberately. It returns only the write error, if any.
func (l *Loop) Shutdown() error {
	return l.send(l.engine.ReleaseAll())
}
