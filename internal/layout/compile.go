package layout

import (
	"fmt"
	"sort"

	"github.com/quillaja/totalmapper/internal/keycode"
)

// pick records, for one reified modifier combination, which concrete key
// sequence each alias name resolved to. A to-side modifier that names an
// alias looks itself up here rather than re-resolving independently, so the
// same physical key stays in play on both sides of a mapping.
type pick map[string][]keycode.Code

// compiler holds the state needed across the whole compile: alias
// definitions (so they're resolved once) and the flat rule set being built.
type compiler struct {
	layout     Layout
	aliasDefs  map[string][][]keycode.Code
	resolving  map[string]bool
	mappings   []CompiledMapping
}

// Compile lowers a fancy Layout into a flat CompiledLayout, resolving
// aliases, expanding row and repeat-only mappings, per the rules an author
// sees documented alongside the JSON format.
func Compile(l Layout) (CompiledLayout, error) {
	c := &compiler{
		layout:    l,
		aliasDefs: make(map[string][][]keycode.Code),
		resolving: make(map[string]bool),
	}

	for _, m := range l.Mappings {
		if !m.isAliasDefinition() {
			continue
		}
		if m.From.Terminal.kind != refCode {
			return CompiledLayout{}, fmt.Errorf("alias %q: alias definitions must have a single physical key on the left", m.To.Terminal.alias)
		}
	}

	// Main pass: single, row, and alias-definition mappings, in document
	// order, skipping repeat-only mappings (no "to").
	for _, m := range l.Mappings {
		if !m.HasTo {
			continue
		}
		switch {
		case m.isAliasDefinition():
			rules, err := c.compileAliasDefinition(m)
			if err != nil {
				return CompiledLayout{}, err
			}
			c.mappings = append(c.mappings, rules...)
		case m.isRowMapping():
			rules, err := c.compileRowMapping(m)
			if err != nil {
				return CompiledLayout{}, err
			}
			c.mappings = append(c.mappings, rules...)
		default:
			rules, err := c.compileSingleMapping(m)
			if err != nil {
				return CompiledLayout{}, err
			}
			c.mappings = append(c.mappings, rules...)
		}
	}

	// Side pass: repeat-only mappings overwrite matching rules' Repeat field,
	// or synthesize an identity rule when nothing matches.
	index := c.buildFromIndex()
	for _, m := range l.Mappings {
		if m.HasTo {
			continue
		}
		if err := c.applyRepeatOnly(m, index); err != nil {
			return CompiledLayout{}, err
		}
	}

	return CompiledLayout{Mappings: c.mappings}, nil
}

// resolveAlias returns every concrete key sequence the alias name can
// reify to: the flattened (modifiers + terminal) of each of its own
// alias-definition mappings.
func (c *compiler) resolveAlias(name string) ([][]keycode.Code, error) {
	if defs, ok := c.aliasDefs[name]; ok {
		return defs, nil
	}
	if c.resolving[name] {
		return nil, fmt.Errorf("alias %q: circular alias definition", name)
	}
	c.resolving[name] = true
	defer delete(c.resolving, name)

	var defs [][]keycode.Code
	found := false
	for _, m := range c.layout.Mappings {
		if !m.isAliasDefinition() || m.To.Terminal.alias != name {
			continue
		}
		found = true
		combos, err := c.expandModifiers(m.From.Modifiers)
		if err != nil {
			return nil, err
		}
		for _, combo := range combos {
			seq := append(append([]keycode.Code{}, combo.codes...), m.From.Terminal.code)
			defs = append(defs, seq)
		}
	}
	if !found {
		return nil, fmt.Errorf("alias %q is referenced but never defined", name)
	}
	c.aliasDefs[name] = defs
	return defs, nil
}

// combo is one reified alternative of a modifier list: the concrete keys to
// hold, in order, plus which alias name (if any) resolved to which keys.
type combo struct {
	codes []keycode.Code
	pick  pick
}

// expandModifiers returns every reified alternative of mods, via the
// Cartesian product of each modifier's alternatives. Earlier modifiers vary
// fastest: the first modifier's choice changes every combination, the
// second's every len(first's alternatives), and so on.
func (c *compiler) expandModifiers(mods []Modifier) ([]combo, error) {
	if len(mods) == 0 {
		return []combo{{codes: nil, pick: pick{}}}, nil
	}

	alternatives := make([][][]keycode.Code, len(mods))
	for i, m := range mods {
		if m.isAlias() {
			defs, err := c.resolveAlias(m.Alias)
			if err != nil {
				return nil, err
			}
			alternatives[i] = defs
		} else {
			alternatives[i] = [][]keycode.Code{{m.Code}}
		}
	}

	total := 1
	for _, alts := range alternatives {
		total *= len(alts)
	}

	combos := make([]combo, 0, total)
	for n := 0; n < total; n++ {
		radix := 1
		codes := []keycode.Code{}
		p := pick{}
		for i, alts := range alternatives {
			choice := (n / radix) % len(alts)
			chosen := alts[choice]
			codes = append(codes, chosen...)
			if mods[i].isAlias() {
				p[mods[i].Alias] = chosen
			}
			radix *= len(alts)
		}
		combos = append(combos, combo{codes: codes, pick: p})
	}
	return combos, nil
}

// reifyModifier returns the concrete keys a single to-side modifier
// contributes, using p to resolve alias references back to whatever was
// chosen for the matching from-side modifier.
func reifyModifier(m Modifier, p pick) ([]keycode.Code, error) {
	if !m.isAlias() {
		return []keycode.Code{m.Code}, nil
	}
	codes, ok := p[m.Alias]
	if !ok {
		return nil, fmt.Errorf("alias %q is referenced on the right but does not appear on the left", m.Alias)
	}
	return codes, nil
}

func reifyModifiers(mods []Modifier, p pick) ([]keycode.Code, error) {
	var out []keycode.Code
	for _, m := range mods {
		codes, err := reifyModifier(m, p)
		if err != nil {
			return nil, err
		}
		out = append(out, codes...)
	}
	return out, nil
}

func compileAbsorbing(mods []Modifier, from []keycode.Code, p pick) (map[keycode.Code]bool, error) {
	if len(mods) == 0 {
		return nil, nil
	}
	codes, err := reifyModifiers(mods, p)
	if err != nil {
		return nil, err
	}
	inFrom := make(map[keycode.Code]bool, len(from))
	for _, c := range from {
		inFrom[c] = true
	}
	out := make(map[keycode.Code]bool, len(codes))
	for _, c := range codes {
		if !inFrom[c] {
			return nil, fmt.Errorf("absorbing key %s does not appear in the mapping's from", c)
		}
		out[c] = true
	}
	return out, nil
}

func reifyRepeat(r Repeat, p pick) (CompiledRepeat, error) {
	switch r.Kind {
	case RepeatNormal:
		return CompiledRepeat{Kind: CompiledRepeatNormal}, nil
	case RepeatDisabled:
		return CompiledRepeat{Kind: CompiledRepeatDisabled}, nil
	case RepeatSpecial:
		keys, err := reifySimpleToSpec(r.Keys, p)
		if err != nil {
			return CompiledRepeat{}, err
		}
		return CompiledRepeat{Kind: CompiledRepeatSpecial, Keys: keys, DelayMs: r.DelayMs, IntervalMs: r.IntervalMs}, nil
	default:
		return CompiledRepeat{}, fmt.Errorf("unknown repeat kind")
	}
}

// reifySimpleToSpec reifies a ToSpec whose terminal must be a physical key,
// an alias, or null — used for repeat "keys" outside of row mappings.
func reifySimpleToSpec(t ToSpec, p pick) ([]keycode.Code, error) {
	codes, err := reifyModifiers(t.Initial, p)
	if err != nil {
		return nil, err
	}
	switch t.Terminal.kind {
	case refNull:
		return codes, nil
	case refCode:
		return append(codes, t.Terminal.code), nil
	case refAlias:
		alias, err := reifyModifier(modAlias(t.Terminal.alias), p)
		if err != nil {
			return nil, err
		}
		return append(codes, alias...), nil
	default:
		return nil, fmt.Errorf("a row or letters terminal is not valid here")
	}
}

// compileSingleMapping expands a plain (non-alias, non-row) mapping over
// every alias alternative of its from-side modifiers.
func (c *compiler) compileSingleMapping(m Mapping) ([]CompiledMapping, error) {
	if m.From.Terminal.kind != refCode {
		return nil, fmt.Errorf("a single mapping's from terminal must be a physical key")
	}
	combos, err := c.expandModifiers(m.From.Modifiers)
	if err != nil {
		return nil, err
	}

	var out []CompiledMapping
	for _, cb := range combos {
		from := append(append([]keycode.Code{}, cb.codes...), m.From.Terminal.code)
		to, err := reifySimpleToSpec(m.To, cb.pick)
		if err != nil {
			return nil, err
		}
		repeat, err := reifyRepeat(m.Repeat, cb.pick)
		if err != nil {
			return nil, err
		}
		absorbing, err := compileAbsorbing(m.Absorbing, from, cb.pick)
		if err != nil {
			return nil, err
		}
		out = append(out, CompiledMapping{From: from, To: to, Repeat: repeat, Absorbing: absorbing})
	}
	return out, nil
}

// compileAliasDefinition implements the "otherwise" branch of alias
// compilation: when the from side isn't a lone conventional modifier, emit
// a flat rule per reified alternative so the engine can still see the
// composite as "active" and so a bare press of a non-modifier alias key
// (e.g. CAPSLOCK) produces no output on its own.
func (c *compiler) compileAliasDefinition(m Mapping) ([]CompiledMapping, error) {
	if len(m.From.Modifiers) == 0 && keycode.IsModifier(m.From.Terminal.code) {
		return nil, nil
	}
	combos, err := c.expandModifiers(m.From.Modifiers)
	if err != nil {
		return nil, err
	}
	var out []CompiledMapping
	for _, cb := range combos {
		from := append(append([]keycode.Code{}, cb.codes...), m.From.Terminal.code)
		to := append([]keycode.Code{}, cb.codes...)
		out = append(out, CompiledMapping{
			From:   from,
			To:     to,
			Repeat: CompiledRepeat{Kind: CompiledRepeatNormal},
		})
	}
	return out, nil
}

// compileRowMapping expands a row mapping: one compiled rule per
// non-skipped column of the "to" string, times every alias alternative of
// the from-side modifiers.
func (c *compiler) compileRowMapping(m Mapping) ([]CompiledMapping, error) {
	row := KeysOf(m.From.Terminal.row)
	toStr := []rune(m.To.Terminal.letters)
	if len(toStr) > len(row) {
		return nil, fmt.Errorf("row %s: to string has more columns than the row has keys", m.From.Terminal.row)
	}

	var repeatLetters []rune
	if m.Repeat.Kind == RepeatSpecial {
		if m.Repeat.Keys.Terminal.kind != refLetters {
			return nil, fmt.Errorf("row %s: special repeat must give a letters string", m.From.Terminal.row)
		}
		repeatLetters = []rune(m.Repeat.Keys.Terminal.letters)
		if len(repeatLetters) > len(toStr) {
			return nil, fmt.Errorf("row %s: repeat string has more columns than the to string", m.From.Terminal.row)
		}
	}

	combos, err := c.expandModifiers(m.From.Modifiers)
	if err != nil {
		return nil, err
	}

	var out []CompiledMapping
	for col, ch := range toStr {
		if ch == ' ' {
			continue
		}
		sk, ok := lookupChar(ch)
		if !ok {
			return nil, fmt.Errorf("row %s: %q is not in the character-access map", m.From.Terminal.row, ch)
		}

		for _, cb := range combos {
			from := append(append([]keycode.Code{}, cb.codes...), row[col])
			shiftKey := pickShift(cb.codes)

			to, err := reifyModifiers(m.To.Initial, cb.pick)
			if err != nil {
				return nil, err
			}
			if sk.shift {
				to = append(to, shiftKey)
			}
			to = append(to, sk.key)

			repeat := CompiledRepeat{Kind: CompiledRepeatNormal}
			switch m.Repeat.Kind {
			case RepeatDisabled:
				repeat = CompiledRepeat{Kind: CompiledRepeatDisabled}
			case RepeatSpecial:
				if col < len(repeatLetters) && repeatLetters[col] != ' ' {
					rsk, ok := lookupChar(repeatLetters[col])
					if !ok {
						return nil, fmt.Errorf("row %s: repeat character %q is not in the character-access map", m.From.Terminal.row, repeatLetters[col])
					}
					rkeys, err := reifyModifiers(m.Repeat.Keys.Initial, cb.pick)
					if err != nil {
						return nil, err
					}
					if rsk.shift {
						rkeys = append(rkeys, shiftKey)
					}
					rkeys = append(rkeys, rsk.key)
					repeat = CompiledRepeat{Kind: CompiledRepeatSpecial, Keys: rkeys,
						DelayMs: m.Repeat.DelayMs, IntervalMs: m.Repeat.IntervalMs}
				}
			}

			absorbing, err := compileAbsorbing(m.Absorbing, from, cb.pick)
			if err != nil {
				return nil, err
			}
			out = append(out, CompiledMapping{From: from, To: to, Repeat: repeat, Absorbing: absorbing})
		}
	}
	return out, nil
}

// pickShift chooses RIGHTSHIFT if the held combination already includes it,
// else LEFTSHIFT, so a shifted row character doesn't fight an already-held
// shift key.
func pickShift(held []keycode.Code) keycode.Code {
	for _, c := range held {
		if c == keycode.RIGHTSHIFT {
			return keycode.RIGHTSHIFT
		}
	}
	return keycode.LEFTSHIFT
}

// fromIndex maps a canonical from-set key to the indices of compiled rules
// sharing it. Indices, not pointers, survive c.mappings being reallocated
// as repeat-only mappings append synthesized rules.
type fromIndex map[string][]int

func (c *compiler) buildFromIndex() fromIndex {
	idx := make(fromIndex, len(c.mappings))
	for i := range c.mappings {
		key := canonicalFromKey(c.mappings[i].From)
		idx[key] = append(idx[key], i)
	}
	return idx
}

// canonicalFromKey identifies a from-set for repeat-only matching: the
// prefix (everything but the final key) is order-independent, but the
// final key's identity and position matter.
func canonicalFromKey(from []keycode.Code) string {
	final := from[len(from)-1]
	prefix := append([]keycode.Code{}, from[:len(from)-1]...)
	sort.Slice(prefix, func(i, j int) bool { return prefix[i] < prefix[j] })
	return fmt.Sprintf("%v|%d", prefix, final)
}

// applyRepeatOnly compiles a repeat-only mapping's from side and either
// overwrites the Repeat field of every matching existing rule, or — if
// none match — synthesizes an identity rule.
func (c *compiler) applyRepeatOnly(m Mapping, idx fromIndex) error {
	if m.From.Terminal.kind != refCode {
		return fmt.Errorf("a repeat-only mapping's from terminal must be a physical key")
	}
	combos, err := c.expandModifiers(m.From.Modifiers)
	if err != nil {
		return err
	}

	for _, cb := range combos {
		from := append(append([]keycode.Code{}, cb.codes...), m.From.Terminal.code)
		repeat, err := reifyRepeat(m.Repeat, cb.pick)
		if err != nil {
			return err
		}

		key := canonicalFromKey(from)
		matches := idx[key]
		if len(matches) == 0 {
			rule := CompiledMapping{From: from, To: append([]keycode.Code{}, from...), Repeat: repeat}
			c.mappings = append(c.mappings, rule)
			idx[key] = append(idx[key], len(c.mappings)-1)
			continue
		}
		for _, i := range matches {
			c.mappings[i].Repeat = repeat
		}
	}
	return nil
}
