package layout

import "github.com/quillaja/totalmapper/internal/keycode"

// sinkKey is the output of looking up a printable character in the
// char-access map: whether producing it requires holding shift, and which
// physical key to press.
type sinkKey struct {
	shift bool
	key   keycode.Code
}

// charAccessMap is the closed US-QWERTY character-to-keystroke table.
var charAccessMap = buildCharAccessMap()

func buildCharAccessMap() map[rune]sinkKey {
	m := make(map[rune]sinkKey, 96)

	add := func(ch rune, shift bool, key keycode.Code) { m[ch] = sinkKey{shift: shift, key: key} }

	digits := []keycode.Code{keycode.K0, keycode.K1, keycode.K2, keycode.K3, keycode.K4,
		keycode.K5, keycode.K6, keycode.K7, keycode.K8, keycode.K9}
	for i, k := range digits {
		add(rune('0'+i), false, k)
	}

	letters := []keycode.Code{keycode.A, keycode.B, keycode.C, keycode.D, keycode.E, keycode.F,
		keycode.G, keycode.H, keycode.I, keycode.J, keycode.K, keycode.L, keycode.M, keycode.N,
		keycode.O, keycode.P, keycode.Q, keycode.R, keycode.S, keycode.T, keycode.U, keycode.V,
		keycode.W, keycode.X, keycode.Y, keycode.Z}
	for i, k := range letters {
		lower := rune('a' + i)
		upper := rune('A' + i)
		add(lower, false, k)
		add(upper, true, k)
	}

	shiftedDigits := []rune("!@#$%^&*()")
	for i, ch := range shiftedDigits {
		add(ch, true, digits[(i+1)%10])
	}

	add(',', false, keycode.COMMA)
	add('.', false, keycode.DOT)
	add('`', false, keycode.GRAVE)
	add('-', false, keycode.MINUS)
	add('=', false, keycode.EQUAL)
	add('[', false, keycode.LEFTBRACE)
	add(']', false, keycode.RIGHTBRACE)
	add(';', false, keycode.SEMICOLON)
	add('\'', false, keycode.APOSTROPHE)
	add('/', false, keycode.SLASH)
	add('\\', false, keycode.BACKSLASH)

	add('~', true, keycode.GRAVE)
	add('_', true, keycode.MINUS)
	add('+', true, keycode.EQUAL)
	add('{', true, keycode.LEFTBRACE)
	add('}', true, keycode.RIGHTBRACE)
	add(':', true, keycode.SEMICOLON)
	add('"', true, keycode.APOSTROPHE)
	add('<', true, keycode.COMMA)
	add('>', true, keycode.DOT)
	add('?', true, keycode.SLASH)
	add('|', true, keycode.BACKSLASH)

	return m
}

// lookupChar returns the keystroke needed to produce ch, or false if ch is
// outside the closed char-access map.
func lookupChar(ch rune) (sinkKey, bool) {
	sk, ok := charAccessMap[ch]
	return sk, ok
}
