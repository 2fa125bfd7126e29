package device

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// RawEvent is one undecoded kernel input_event record: a type/code/value
// triple plus its timestamp, exposed for the CLI's monitor-raw command.
type RawEvent struct {
	Sec, Usec int64
	Type      uint16
	Code      uint16
	Value     int32
}

// RawReader reads every kernel record from a device node without the
// key-event filtering Reader applies.
type RawReader struct {
	fd int
}

// OpenRaw opens path read-only, blocking, with no exclusion.
func OpenRaw(path string) (*RawReader, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("device: open %s: %w", path, err)
	}
	return &RawReader{fd: fd}, nil
}

// Next reads one raw record, blocking until one is available.
func (r *RawReader) Next() (RawEvent, error) {
	buf := make([]byte, inputEventSize)
	for {
		n, err := unix.Read(r.fd, buf)
		if err != nil {
			if errors.Is(err, unix.ENODEV) {
				return RawEvent{}, ErrEnded
			}
			return RawEvent{}, fmt.Errorf("device: read: %w", err)
		}
		if n < inputEventSize {
			continue
		}
		return decodeRawRecord(buf), nil
	}
}

func decodeRawRecord(buf []byte) RawEvent {
	sec := int64(uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56)
	usec := int64(uint64(buf[8]) | uint64(buf[9])<<8 | uint64(buf[10])<<16 | uint64(buf[11])<<24 |
		uint64(buf[12])<<32 | uint64(buf[13])<<40 | uint64(buf[14])<<48 | uint64(buf[15])<<56)
	evType := uint16(buf[16]) | uint16(buf[17])<<8
	code := uint16(buf[18]) | uint16(buf[19])<<8
	value := int32(uint32(buf[20]) | uint32(buf[21])<<8 | uint32(buf[22])<<16 | uint32(buf[23])<<24)
	return RawEvent{Sec: sec, Usec: usec, Type: evType, Code: code, Value: value}
}

// Close releases the underlying file descriptor.
func (r *RawReader) Close() error {
	return unix.Close(r.fd)
}
