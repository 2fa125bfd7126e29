// Package mapper implements the deterministic remapping engine: a
// press/release state machine that turns one physical key-event stream
// into the synthetic output stream, honoring chords, modifier absorption,
// and custom key-repeat.
package mapper

import (
	"github.com/quillaja/totalmapper/internal/keycode"
	"github.com/quillaja/totalmapper/internal/keyevent"
	"github.com/quillaja/totalmapper/internal/layout"
)

// RepeatKind selects what an engine step tells the caller about repeat.
type RepeatKind int

const (
	// RepeatNoChange leaves whatever repeat state the caller already has.
	RepeatNoChange RepeatKind = iota
	// RepeatDisabled means the caller must stop any custom repeat timer.
	RepeatDisabled
	// RepeatRepeating means the caller must (re)start a custom repeat timer.
	RepeatRepeating
)

// RepeatDirective tells the per-device loop what to do with its repeat
// timer after a step.
type RepeatDirective struct {
	Kind       RepeatKind
	Keys       []keycode.Code // valid iff Kind == RepeatRepeating
	DelayMs    int
	IntervalMs int
}

// StepResult is the outcome of feeding one Event to the engine.
type StepResult struct {
	Events []keyevent.Event
	Repeat RepeatDirective
}

// Engine is the per-device remapping state machine. It is not safe for
// concurrent use; each device's event loop owns one Engine.
type Engine struct {
	index *Index

	inputPressed   *orderedSet
	passThrough    *orderedSet
	mappedOutput   *orderedSet
	mappedAbsorbed *orderedSet

	activeMappings   []*layout.CompiledMapping
	repeatingTrigger *keycode.Code
}

// New builds an engine over an already-validated index.
func New(index *Index) *Engine {
	return &Engine{
		index:          index,
		inputPressed:   newOrderedSet(),
		passThrough:    newOrderedSet(),
		mappedOutput:   newOrderedSet(),
		mappedAbsorbed: newOrderedSet(),
	}
}

// Step feeds one physical key event to the engine. Out-of-order events
// (a release with no matching press, or a duplicate press) are silent
// no-ops: the engine never fails at run time.
func (e *Engine) Step(ev keyevent.Event) StepResult {
	if ev.Pressed {
		if e.inputPressed.Contains(ev.Code) {
			return StepResult{}
		}
		return e.press(ev.Code)
	}
	if !e.inputPressed.Contains(ev.Code) {
		return StepResult{}
	}
	return e.release(ev.Code)
}

func (e *Engine) press(k keycode.Code) StepResult {
	var events []keyevent.Event
	result := StepResult{}

	e.mappedAbsorbed.Remove(k)
	e.repeatingTrigger = nil

	rule := e.firstSupportedRule(k)
	switch {
	case rule != nil:
		events = append(events, e.activate(rule, k, &result)...)
	case e.referencedByActiveMapping(k):
		// swallow: no event, pass_through unchanged
	default:
		if keycode.IsActionKey(k) {
			events = append(events, e.releaseActionMappings()...)
			events = append(events, e.releaseAbsorbed()...)
		}
		events = append(events, keyevent.Pressed(k))
		e.passThrough.Add(k)
	}

	e.inputPressed.Add(k)
	result.Events = events
	return result
}

// firstSupportedRule finds the first rule, in index order (longest from
// first, lexicographic tie-break), whose from is fully "supported": every
// key either equals k or is already pressed and not absorbed.
func (e *Engine) firstSupportedRule(k keycode.Code) *layout.CompiledMapping {
	for _, rule := range e.index.Candidates(k) {
		if e.supported(rule, k) {
			return rule
		}
	}
	return nil
}

func (e *Engine) supported(rule *layout.CompiledMapping, k keycode.Code) bool {
	for _, fk := range rule.From {
		if fk == k {
			continue
		}
		if !e.inputPressed.Contains(fk) || e.mappedAbsorbed.Contains(fk) {
			return false
		}
	}
	return true
}

func (e *Engine) referencedByActiveMapping(k keycode.Code) bool {
	for _, am := range e.activeMappings {
		if containsCode(am.From, k) || containsCode(am.To, k) {
			return true
		}
	}
	return false
}

// activate runs the rule-activation procedure (press handling step 3) and
// fills in result.Repeat.
func (e *Engine) activate(rule *layout.CompiledMapping, k keycode.Code, result *StepResult) []keyevent.Event {
	var events []keyevent.Event

	// 3a: reconcile pass_through against the rule's keys.
	inRule := func(c keycode.Code) bool { return containsCode(rule.From, c) || containsCode(rule.To, c) }
	for _, pt := range append([]keycode.Code{}, e.passThrough.Keys()...) {
		if !inRule(pt) {
			continue
		}
		if containsCode(rule.To, pt) {
			e.passThrough.Remove(pt)
			e.mappedOutput.Add(pt)
		} else {
			events = append(events, keyevent.Released(pt))
			e.passThrough.Remove(pt)
		}
	}

	// 3b: an action mapping clears prior action-mapping output and any
	// absorbed keys before computing its own output.
	if isActionMapping(rule) {
		events = append(events, e.releaseActionMappings()...)
		events = append(events, e.releaseAbsorbed()...)
	}

	// 3c: emit the rule's to.
	for _, tk := range rule.To {
		switch {
		case keycode.IsActionKey(tk) && e.mappedOutput.Contains(tk):
			events = append(events, keyevent.Released(tk), keyevent.Pressed(tk))
			e.mappedOutput.Add(tk)
		case keycode.IsActionKey(tk) && e.passThrough.Contains(tk):
			events = append(events, keyevent.Released(tk), keyevent.Pressed(tk))
			e.passThrough.Remove(tk)
			e.mappedOutput.Add(tk)
		case keycode.IsActionKey(tk):
			events = append(events, keyevent.Pressed(tk))
			e.mappedOutput.Add(tk)
		case !e.mappedOutput.Contains(tk) && !e.passThrough.Contains(tk):
			// modifier, not already held anywhere
			events = append(events, keyevent.Pressed(tk))
			e.mappedOutput.Add(tk)
		}
	}

	// 3d
	for ab := range rule.Absorbing {
		e.mappedAbsorbed.Add(ab)
	}

	// 3e
	e.activeMappings = append(e.activeMappings, rule)

	// 3f
	switch rule.Repeat.Kind {
	case layout.CompiledRepeatNormal:
		result.Repeat = RepeatDirective{Kind: RepeatDisabled}
	case layout.CompiledRepeatDisabled:
		events = append(events, e.releaseAllActionKeys()...)
		result.Repeat = RepeatDirective{Kind: RepeatDisabled}
	case layout.CompiledRepeatSpecial:
		events = append(events, e.releaseAllActionKeys()...)
		e.repeatingTrigger = &k
		result.Repeat = RepeatDirective{
			Kind:       RepeatRepeating,
			Keys:       rule.Repeat.Keys,
			DelayMs:    rule.Repeat.DelayMs,
			IntervalMs: rule.Repeat.IntervalMs,
		}
	}

	return events
}

func (e *Engine) release(k keycode.Code) StepResult {
	var events []keyevent.Event

	for _, am := range e.activeMappingsContaining(k) {
		events = append(events, e.removeMapping(am, k)...)
	}

	if e.passThrough.Contains(k) {
		events = append(events, keyevent.Released(k))
		e.passThrough.Remove(k)
	}

	e.inputPressed.Remove(k)

	result := StepResult{Events: events}
	if e.repeatingTrigger != nil && *e.repeatingTrigger == k {
		e.repeatingTrigger = nil
		result.Repeat = RepeatDirective{Kind: RepeatDisabled}
	} else {
		result.Repeat = RepeatDirective{Kind: RepeatNoChange}
	}
	return result
}

// activeMappingsContaining returns active mappings whose from contains k,
// most recently activated first.
func (e *Engine) activeMappingsContaining(k keycode.Code) []*layout.CompiledMapping {
	var out []*layout.CompiledMapping
	for i := len(e.activeMappings) - 1; i >= 0; i-- {
		if containsCode(e.activeMappings[i].From, k) {
			out = append(out, e.activeMappings[i])
		}
	}
	return out
}

// removeMapping implements the remove-mapping procedure: reconcile every
// currently-output key against the remaining active mappings (excluding
// the one being removed), then drop the mapping itself. releasingKey is
// the physical key whose release or absorption triggered this removal.
func (e *Engine) removeMapping(mapping *layout.CompiledMapping, releasingKey keycode.Code) []keyevent.Event {
	var events []keyevent.Event

	others := func(pred func(*layout.CompiledMapping) bool) bool {
		for _, am := range e.activeMappings {
			if am == mapping {
				continue
			}
			if pred(am) {
				return true
			}
		}
		return false
	}

	for _, key := range e.mappedOutput.ReverseKeys() {
		if others(func(am *layout.CompiledMapping) bool { return containsCode(am.To, key) }) {
			continue // still mentioned by another active mapping's to
		}
		shadowed := others(func(am *layout.CompiledMapping) bool { return containsCode(am.From, key) })
		if e.inputPressed.Contains(key) && key != releasingKey && !shadowed {
			e.mappedOutput.Remove(key)
			e.passThrough.Add(key)
		} else {
			events = append(events, keyevent.Released(key))
			e.mappedOutput.Remove(key)
		}
	}

	e.dropActiveMapping(mapping)
	return events
}

func (e *Engine) dropActiveMapping(mapping *layout.CompiledMapping) {
	for i, am := range e.activeMappings {
		if am == mapping {
			e.activeMappings = append(e.activeMappings[:i], e.activeMappings[i+1:]...)
			return
		}
	}
}

// releaseActionMappings implements the release-action-mappings helper:
// release every active action mapping's still-held to keys, plus any
// action key sitting in pass_through.
func (e *Engine) releaseActionMappings() []keyevent.Event {
	var events []keyevent.Event
	for _, am := range e.activeMappings {
		if !isActionMapping(am) {
			continue
		}
		toCopy := append([]keycode.Code{}, am.To...)
		for i := len(toCopy) - 1; i >= 0; i-- {
			key := toCopy[i]
			if e.mappedOutput.Contains(key) {
				events = append(events, keyevent.Released(key))
				e.mappedOutput.Remove(key)
			}
		}
	}
	for _, key := range e.passThrough.ReverseKeys() {
		if keycode.IsActionKey(key) {
			events = append(events, keyevent.Released(key))
		}
	}
	e.passThrough.RemoveWhere(keycode.IsActionKey)
	return events
}

// releaseAllActionKeys releases every action key currently held in
// mapped_output or pass_through, regardless of which mapping (if any) put
// it there. Used by Disabled/Special repeat activation.
func (e *Engine) releaseAllActionKeys() []keyevent.Event {
	var events []keyevent.Event
	for _, key := range e.mappedOutput.ReverseKeys() {
		if keycode.IsActionKey(key) {
			events = append(events, keyevent.Released(key))
			e.mappedOutput.Remove(key)
		}
	}
	for _, key := range e.passThrough.ReverseKeys() {
		if keycode.IsActionKey(key) {
			events = append(events, keyevent.Released(key))
		}
	}
	e.passThrough.RemoveWhere(keycode.IsActionKey)
	return events
}

// releaseAbsorbed implements the release-absorbed helper: drain
// mapped_absorbed, removing any active mapping each drained key still
// triggers and releasing it from pass_through/input_pressed.
func (e *Engine) releaseAbsorbed() []keyevent.Event {
	var events []keyevent.Event
	for _, k := range e.mappedAbsorbed.Drain() {
		for _, am := range e.activeMappingsContaining(k) {
			events = append(events, e.removeMapping(am, k)...)
		}
		if e.passThrough.Contains(k) {
			events = append(events, keyevent.Released(k))
			e.passThrough.Remove(k)
		}
		e.inputPressed.Remove(k)
	}
	return events
}

// ReleaseAll feeds a release for every currently-pressed key, in insertion
// order, and returns the concatenated events. Used when a device's worker
// shuts down or tablet mode engages.
func (e *Engine) ReleaseAll() []keyevent.Event {
	var events []keyevent.Event
	for _, k := range append([]keycode.Code{}, e.inputPressed.Keys()...) {
		events = append(events, e.release(k).Events...)
	}
	return events
}

// isActionMapping reports whether rule is an action mapping: a non-empty
// to whose last key is an action key (not a plain modifier).
func isActionMapping(rule *layout.CompiledMapping) bool {
	return len(rule.To) > 0 && keycode.IsActionKey(rule.To[len(rule.To)-1])
}
