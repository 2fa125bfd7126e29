// Package layout implements the fancy (author-facing) layout format, its
// JSON encoding, and the compiler that lowers it to a flat rule set.
package layout

import "github.com/quillaja/totalmapper/internal/keycode"

// Modifier is either a concrete key or a named alias (conventionally
// prefixed "@").
type Modifier struct {
	Alias string
	Code  keycode.Code
}

func modKey(c keycode.Code) Modifier  { return Modifier{Code: c} }
func modAlias(name string) Modifier   { return Modifier{Alias: name} }
func (m Modifier) isAlias() bool      { return m.Alias != "" }

// keyRefKind tags which of KeyRef's fields is meaningful.
type keyRefKind int

const (
	refCode keyRefKind = iota
	refRow
	refLetters
	refAlias
	refNull
)

// KeyRef is a terminal reference on either side of a mapping: a physical
// key, a row tag, a literal-character run, an alias name, or "null" (no
// output).
type KeyRef struct {
	kind    keyRefKind
	code    keycode.Code
	row     Row
	letters string
	alias   string
}

func refOfCode(c keycode.Code) KeyRef       { return KeyRef{kind: refCode, code: c} }
func refOfRow(r Row) KeyRef                 { return KeyRef{kind: refRow, row: r} }
func refOfLetters(s string) KeyRef          { return KeyRef{kind: refLetters, letters: s} }
func refOfAlias(name string) KeyRef         { return KeyRef{kind: refAlias, alias: name} }
func refOfNull() KeyRef                     { return KeyRef{kind: refNull} }

// FromSpec is the left-hand side of a mapping: zero or more leading
// modifiers plus a terminal key or row reference.
type FromSpec struct {
	Modifiers []Modifier
	Terminal  KeyRef // refCode or refRow
}

// ToSpec is the right-hand side of a mapping or of a Special repeat's
// "keys": zero or more leading modifiers plus a terminal.
type ToSpec struct {
	Initial  []Modifier
	Terminal KeyRef // refCode, refLetters, refAlias, or refNull
}

// RepeatKind selects which repeat policy a mapping carries.
type RepeatKind int

const (
	RepeatNormal RepeatKind = iota
	RepeatDisabled
	RepeatSpecial
)

// Repeat is the fancy-layout repeat directive.
type Repeat struct {
	Kind       RepeatKind
	Keys       ToSpec // valid iff Kind == RepeatSpecial
	DelayMs    int
	IntervalMs int
}

// Mapping is one fancy-layout rule. HasTo distinguishes a normal mapping
// (from + to) from a repeat-only mapping (from + repeat, no to).
type Mapping struct {
	From      FromSpec
	HasTo     bool
	To        ToSpec
	Repeat    Repeat
	Absorbing []Modifier
}

// Layout is the top-level fancy-layout document.
type Layout struct {
	Mappings []Mapping
}

// isAliasDefinition reports whether m defines an alias: its "to" terminal
// names an alias rather than a physical key, row, or null.
func (m Mapping) isAliasDefinition() bool {
	return m.HasTo && m.To.Terminal.kind == refAlias
}

// isRowMapping reports whether m is a row mapping: its "from" terminal is a
// row and its "to" terminal is a literal-character run.
func (m Mapping) isRowMapping() bool {
	return m.From.Terminal.kind == refRow && m.HasTo && m.To.Terminal.kind == refLetters
}
