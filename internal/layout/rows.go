package layout

import "github.com/quillaja/totalmapper/internal/keycode"

// Row names one of the five physical US-QWERTY rows a "row" mapping can
// reference.
type Row int

const (
	RowGrave Row = iota
	Row1
	RowQ
	RowA
	RowZ
)

// rowNames gives the JSON/display spelling of each Row, matching the
// convention that the tag is the row's leftmost physical key.
var rowNames = map[Row]string{
	RowGrave: "`",
	Row1:     "1",
	RowQ:     "Q",
	RowA:     "A",
	RowZ:     "Z",
}

var rowsByName map[string]Row

func init() {
	rowsByName = make(map[string]Row, len(rowNames))
	for row, name := range rowNames {
		rowsByName[name] = row
	}
}

func (r Row) String() string { return rowNames[r] }

// ParseRow maps a row tag to its Row value.
func ParseRow(name string) (Row, bool) {
	r, ok := rowsByName[name]
	return r, ok
}

// usRows holds the physical keys of each row, left to right, on US-QWERTY.
var usRows = map[Row][]keycode.Code{
	RowGrave: {keycode.GRAVE, keycode.K1, keycode.K2, keycode.K3, keycode.K4, keycode.K5, keycode.K6,
		keycode.K7, keycode.K8, keycode.K9, keycode.K0, keycode.MINUS, keycode.EQUAL},
	Row1: {keycode.K1, keycode.K2, keycode.K3, keycode.K4, keycode.K5, keycode.K6,
		keycode.K7, keycode.K8, keycode.K9, keycode.K0, keycode.MINUS, keycode.EQUAL},
	RowQ: {keycode.Q, keycode.W, keycode.E, keycode.R, keycode.T, keycode.Y, keycode.U,
		keycode.I, keycode.O, keycode.P, keycode.LEFTBRACE, keycode.RIGHTBRACE},
	RowA: {keycode.A, keycode.S, keycode.D, keycode.F, keycode.G, keycode.H, keycode.J,
		keycode.K, keycode.L, keycode.SEMICOLON, keycode.APOSTROPHE},
	RowZ: {keycode.Z, keycode.X, keycode.C, keycode.V, keycode.B, keycode.N, keycode.M,
		keycode.COMMA, keycode.DOT, keycode.SLASH},
}

// KeysOf returns the physical keys of row r, left to right.
func KeysOf(r Row) []keycode.Code {
	return usRows[r]
}
