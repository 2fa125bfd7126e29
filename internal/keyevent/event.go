// Package keyevent defines the press/release event value shared by the
// mapper, device adapters and per-device loop.
package keyevent

import "github.com/quillaja/totalmapper/internal/keycode"

// Event is an immutable key transition: a code that was pressed or released.
type Event struct {
	Code    keycode.Code
	Pressed bool
}

// Pressed builds a press event for c.
func Pressed(c keycode.Code) Event { return Event{Code: c, Pressed: true} }

// Released builds a release event for c.
func Released(c keycode.Code) Event { return Event{Code: c, Pressed: false} }

func (e Event) String() string {
	if e.Pressed {
		return "Pressed(" + e.Code.String() + ")"
	}
	return "Released(" + e.Code.String() + ")"
}
