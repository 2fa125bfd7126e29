package device

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/quillaja/totalmapper/internal/keyevent"
)

const (
	evSyn = 0
	evKey = 1
	evMsc = 4

	deviceName = "totalmapper"
	nameField  = 80 // UINPUT_MAX_NAME_SIZE
	maxKeyBit  = 561
)

// Writer emits key events through a synthetic "totalmapper" input device.
type Writer struct {
	fd int
}

// OpenWriter creates the synthetic uinput device and readies it to
// receive events.
func OpenWriter() (*Writer, error) {
	fd, err := unix.Open("/dev/uinput", unix.O_WRONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("device: open /dev/uinput: %w", err)
	}

	w := &Writer{fd: fd}

	for _, bit := range []uintptr{evSyn, evKey, evMsc} {
		if err := w.ioctlInt(uiSetEvbit, bit); err != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("device: UI_SET_EVBIT(%d): %w", bit, err)
		}
	}
	for i := uintptr(1); i <= maxKeyBit; i++ {
		if err := w.ioctlInt(uiSetKeybit, i); err != nil {
			unix.Close(fd)
			return nil, fmt.Errorf("device: UI_SET_KEYBIT(%d): %w", i, err)
		}
	}

	if err := w.registerDevice(); err != nil {
		unix.Close(fd)
		return nil, err
	}

	if err := w.ioctlInt(uiDevCreate, 0); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("device: UI_DEV_CREATE: %w", err)
	}

	return w, nil
}

// registerDevice writes the legacy uinput_user_dev record: name, bus
// identifiers, and four zeroed 64-entry absolute-axis arrays.
func (w *Writer) registerDevice() error {
	buf := make([]byte, 0, nameField+8+4+64*4*4)

	nameBytes := make([]byte, nameField)
	copy(nameBytes, deviceName)
	buf = append(buf, nameBytes...)

	buf = appendU16(buf, 3) // bustype
	buf = appendU16(buf, 1) // vendor
	buf = appendU16(buf, 1) // product
	buf = appendU16(buf, 1) // version

	buf = appendU32(buf, 0) // ff_effects_max

	zeroI32s := make([]byte, 64*4)
	for i := 0; i < 4; i++ { // absmax, absmin, absfuzz, absflat
		buf = append(buf, zeroI32s...)
	}

	_, err := unix.Write(w.fd, buf)
	if err != nil {
		return fmt.Errorf("device: write uinput_user_dev: %w", err)
	}
	return nil
}

// Send writes one kernel record per event followed by a terminating SYN.
func (w *Writer) Send(events []keyevent.Event) error {
	buf := make([]byte, 0, (len(events)+1)*inputEventSize)
	for _, ev := range events {
		value := int32(0)
		if ev.Pressed {
			value = 1
		}
		buf = appendEventRecord(buf, evKey, uint16(ev.Code), value)
	}
	buf = appendEventRecord(buf, evSyn, 0, 0)

	_, err := unix.Write(w.fd, buf)
	if err != nil {
		return fmt.Errorf("device: write events: %w", err)
	}
	return nil
}

// Close destroys the synthetic device.
func (w *Writer) Close() error {
	return unix.Close(w.fd)
}

func (w *Writer) ioctlInt(req uint, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(w.fd), uintptr(req), arg)
	if errno != 0 {
		return errno
	}
	return nil
}

func appendEventRecord(buf []byte, evType, code uint16, value int32) []byte {
	buf = append(buf, make([]byte, 16)...) // two ignored 8-byte time fields
	buf = appendU16(buf, evType)
	buf = appendU16(buf, code)
	buf = appendI32(buf, value)
	return buf
}

func appendU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v), byte(v>>8))
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendI32(buf []byte, v int32) []byte {
	return appendU32(buf, uint32(v))
}
