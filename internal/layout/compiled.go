package layout

import "github.com/quillaja/totalmapper/internal/keycode"

// CompiledRepeatKind selects a compiled mapping's repeat policy.
type CompiledRepeatKind int

const (
	CompiledRepeatNormal CompiledRepeatKind = iota
	CompiledRepeatDisabled
	CompiledRepeatSpecial
)

// CompiledRepeat is the flat repeat directive the engine consults.
type CompiledRepeat struct {
	Kind       CompiledRepeatKind
	Keys       []keycode.Code // valid iff Kind == CompiledRepeatSpecial
	DelayMs    int
	IntervalMs int
}

// CompiledMapping is one flat rule the engine matches against. From is
// non-empty and duplicate-free; To is duplicate-free (possibly empty).
// Every key in Absorbing appears in From.
type CompiledMapping struct {
	From      []keycode.Code
	To        []keycode.Code
	Repeat    CompiledRepeat
	Absorbing map[keycode.Code]bool
}

// FinalKey is the last key of the mapping's From sequence: the key whose
// press can trigger this rule.
func (m CompiledMapping) FinalKey() keycode.Code {
	return m.From[len(m.From)-1]
}

// CompiledLayout is an ordered list of compiled mappings, as produced by
// Compile.
type CompiledLayout struct {
	Mappings []CompiledMapping
}
