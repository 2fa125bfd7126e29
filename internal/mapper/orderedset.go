package mapper

import "github.com/quillaja/totalmapper/internal/keycode"

// orderedSet is an insertion-ordered set of key codes. The engine needs
// both O(1) membership tests and a stable iteration order (forward for
// insertion order, reverse for "most recently added first"), which a plain
// map or slice alone doesn't give cheaply.
type orderedSet struct {
	order []keycode.Code
	has   map[keycode.Code]bool
}

func newOrderedSet() *orderedSet {
	return &orderedSet{has: make(map[keycode.Code]bool)}
}

func (s *orderedSet) Add(k keycode.Code) {
	if s.has[k] {
		return
	}
	s.has[k] = true
	s.order = append(s.order, k)
}

func (s *orderedSet) Remove(k keycode.Code) {
	if !s.has[k] {
		return
	}
	delete(s.has, k)
	for i, o := range s.order {
		if o == k {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *orderedSet) Contains(k keycode.Code) bool { return s.has[k] }

func (s *orderedSet) Len() int { return len(s.order) }

// Keys returns members in insertion order. Callers must not mutate it.
func (s *orderedSet) Keys() []keycode.Code { return s.order }

// ReverseKeys returns a new slice with members in reverse insertion order.
func (s *orderedSet) ReverseKeys() []keycode.Code {
	out := make([]keycode.Code, len(s.order))
	for i, k := range s.order {
		out[len(s.order)-1-i] = k
	}
	return out
}

// RemoveWhere drops every member for which pred returns true.
func (s *orderedSet) RemoveWhere(pred func(keycode.Code) bool) {
	for _, k := range append([]keycode.Code{}, s.order...) {
		if pred(k) {
			s.Remove(k)
		}
	}
}

// Drain removes and returns every member, in insertion order.
func (s *orderedSet) Drain() []keycode.Code {
	out := s.order
	s.order = nil
	s.has = make(map[keycode.Code]bool)
	return out
}

func containsCode(codes []keycode.Code, k keycode.Code) bool {
	for _, c := range codes {
		if c == k {
			return true
		}
	}
	return false
}
