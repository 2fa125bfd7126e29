package device

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/quillaja/totalmapper/internal/keycode"
	"github.com/quillaja/totalmapper/internal/keyevent"
)

// Exclusion controls how Open claims the device.
type Exclusion int

const (
	// NoExclusion leaves the device readable by everyone else too.
	NoExclusion Exclusion = iota
	// ImmediateExclusion grabs the device as soon as it's opened.
	ImmediateExclusion
	// WaitReleaseAndGrab waits until no key on the device is held, then
	// grabs it. Avoids stranding a key another process thinks is still down.
	WaitReleaseAndGrab
)

// ErrBusy is returned by Next when a non-blocking read has nothing to offer.
var ErrBusy = errors.New("device: no data available")

// ErrEnded is returned by Next when the underlying device has gone away,
// typically because the USB keyboard was unplugged.
var ErrEnded = errors.New("device: device ended")

const inputEventSize = 24 // two 8-byte time fields + u16 + u16 + i32

// Reader reads translated key events from a /dev/input/eventN node.
type Reader struct {
	fd       int
	nonblock bool
}

// Open opens path under the given exclusion policy. If nonblock is true,
// Next returns ErrBusy instead of blocking when no event is ready.
func Open(path string, exclusion Exclusion, nonblock bool) (*Reader, error) {
	flags := unix.O_RDONLY
	if nonblock {
		flags |= unix.O_NONBLOCK
	}
	fd, err := unix.Open(path, flags, 0)
	if err != nil {
		return nil, fmt.Errorf("device: open %s: %w", path, err)
	}

	r := &Reader{fd: fd, nonblock: nonblock}

	switch exclusion {
	case NoExclusion:
	case ImmediateExclusion:
		if err := r.grab(); err != nil {
			unix.Close(fd)
			return nil, err
		}
	case WaitReleaseAndGrab:
		if err := r.waitReleaseLoop(); err != nil {
			unix.Close(fd)
			return nil, err
		}
		if err := r.grab(); err != nil {
			unix.Close(fd)
			return nil, err
		}
	}

	return r, nil
}

func (r *Reader) grab() error {
	one := 1
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(r.fd), eviocgrab, uintptr(unsafe.Pointer(&one)))
	if errno != 0 {
		return fmt.Errorf("device: EVIOCGRAB: %w", errno)
	}
	return nil
}

// waitReleaseLoop blocks until EVIOCGKEY reports no key held, re-checking
// only after observing device activity rather than spinning.
func (r *Reader) waitReleaseLoop() error {
	numBytes := (evKeyMax + 7) / 8
	bits := make([]byte, numBytes)

	for {
		for i := range bits {
			bits[i] = 0
		}
		req := eviocgkey(numBytes)
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(r.fd), req, uintptr(unsafe.Pointer(&bits[0])))
		if errno != 0 {
			return fmt.Errorf("device: EVIOCGKEY: %w", errno)
		}

		allZero := true
		for _, b := range bits {
			if b != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			return nil
		}

		if err := r.waitForActivity(); err != nil {
			return err
		}
	}
}

func (r *Reader) waitForActivity() error {
	buf := make([]byte, inputEventSize)
	_, err := unix.Read(r.fd, buf)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EAGAIN) {
		return fmt.Errorf("device: read: %w", err)
	}

	pfd := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(pfd, -1)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("device: poll: %w", err)
		}
		if n > 0 {
			return nil
		}
	}
}

// Next reads the next key transition. It skips any kernel record that isn't
// a key event with value 0 or 1 - auto-repeat records (value 2) included,
// since repeat is the mapper's responsibility, not the kernel's.
func (r *Reader) Next() (keyevent.Event, error) {
	buf := make([]byte, inputEventSize)
	for {
		n, err := unix.Read(r.fd, buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				return keyevent.Event{}, ErrBusy
			}
			if errors.Is(err, unix.ENODEV) {
				return keyevent.Event{}, ErrEnded
			}
			return keyevent.Event{}, fmt.Errorf("device: read: %w", err)
		}
		if n < inputEventSize {
			continue
		}

		evType := uint16(buf[16]) | uint16(buf[17])<<8
		code := uint16(buf[18]) | uint16(buf[19])<<8
		value := int32(uint32(buf[20]) | uint32(buf[21])<<8 | uint32(buf[22])<<16 | uint32(buf[23])<<24)

		const evKey = 1
		if evType != evKey {
			continue
		}
		if value != 0 && value != 1 {
			continue
		}

		c := keycode.Code(code)
		if value == 1 {
			return keyevent.Pressed(c), nil
		}
		return keyevent.Released(c), nil
	}
}

// Close releases the underlying file descriptor.
func (r *Reader) Close() error {
	return unix.Close(r.fd)
}

// Fd returns the underlying file descriptor, for registering with a
// readiness multiplexer.
func (r *Reader) Fd() int {
	return r.fd
}
