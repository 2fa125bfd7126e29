package device

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// swTabletMode is linux/input-event-codes.h's SW_TABLET_MODE.
const swTabletMode = 0x0b

const evSw = 5

// SwitchReader reads tablet-mode-switch transitions from a /dev/input
// node that exposes EV_SW/SW_TABLET_MODE, the same record framing as a
// keyboard's EV_KEY stream.
type SwitchReader struct {
	fd int
}

// OpenSwitch opens path non-blocking, for polling alongside a keyboard
// Reader. No grab is ever taken on a switch device.
func OpenSwitch(path string) (*SwitchReader, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("device: open switch %s: %w", path, err)
	}
	return &SwitchReader{fd: fd}, nil
}

// Next returns the next tablet-mode state, skipping every record that
// isn't an EV_SW/SW_TABLET_MODE transition.
func (s *SwitchReader) Next() (tabletMode bool, err error) {
	buf := make([]byte, inputEventSize)
	for {
		n, err := unix.Read(s.fd, buf)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) {
				return false, ErrBusy
			}
			if errors.Is(err, unix.ENODEV) {
				return false, ErrEnded
			}
			return false, fmt.Errorf("device: read switch: %w", err)
		}
		if n < inputEventSize {
			continue
		}

		evType := uint16(buf[16]) | uint16(buf[17])<<8
		code := uint16(buf[18]) | uint16(buf[19])<<8
		value := int32(uint32(buf[20]) | uint32(buf[21])<<8 | uint32(buf[22])<<16 | uint32(buf[23])<<24)

		if evType != evSw || code != swTabletMode {
			continue
		}
		return value != 0, nil
	}
}

// Fd returns the underlying file descriptor.
func (s *SwitchReader) Fd() int {
	return s.fd
}

// Close releases the underlying file descriptor.
func (s *SwitchReader) Close() error {
	return unix.Close(s.fd)
}
