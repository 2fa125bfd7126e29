package device

// ioctl request codes for evdev and uinput. These are the standard Linux
// values computed by the kernel's _IOW/_IO macros; they're reproduced here
// rather than pulled from a generated header because golang.org/x/sys/unix
// doesn't export the evdev/uinput family.
const (
	eviocgrab = 0x40044590 // _IOW('E', 0x90, int)

	uiSetEvbit  = 0x40045564 // _IOW('U', 100, int)
	uiSetKeybit = 0x40045565 // _IOW('U', 101, int)
	uiDevCreate = 0x5501     // _IO('U', 1)
)

// evKeyMax mirrors KEY_MAX from linux/input-event-codes.h, used to size the
// EVIOCGKEY bitmap.
const evKeyMax = 0x2ff

// eviocgkey computes the _IOC_READ request for querying the "currently
// pressed" bitmap of numBytes bytes.
func eviocgkey(numBytes int) uintptr {
	const ioctlRead = 2 << 30
	return uintptr(ioctlRead | (numBytes&0x3fff)<<16 | 'E'<<8 | 0x18)
}
