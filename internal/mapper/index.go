package mapper

import (
	"fmt"
	"sort"

	"github.com/quillaja/totalmapper/internal/keycode"
	"github.com/quillaja/totalmapper/internal/layout"
)

// Index is a compiled layout bucketed by the final key of each rule's
// `from`, each bucket sorted longest-from-first, ties broken
// lexicographically by `from`.
type Index struct {
	buckets map[keycode.Code][]*layout.CompiledMapping
}

// BuildIndex validates a compiled layout (no duplicate keys within a
// single rule's from or to) and indexes it for the engine. A malformed
// layout faults loudly here rather than later, at run time.
func BuildIndex(cl layout.CompiledLayout) (*Index, error) {
	idx := &Index{buckets: make(map[keycode.Code][]*layout.CompiledMapping)}

	for i := range cl.Mappings {
		m := &cl.Mappings[i]
		if hasDuplicates(m.From) {
			return nil, fmt.Errorf("layout: duplicate key within a rule's from: %v", m.From)
		}
		if hasDuplicates(m.To) {
			return nil, fmt.Errorf("layout: duplicate key within a rule's to: %v", m.To)
		}
		final := m.FinalKey()
		idx.buckets[final] = append(idx.buckets[final], m)
	}

	for _, bucket := range idx.buckets {
		sort.SliceStable(bucket, func(i, j int) bool {
			a, b := bucket[i].From, bucket[j].From
			if len(a) != len(b) {
				return len(a) > len(b)
			}
			for k := range a {
				if a[k] != b[k] {
					return a[k] < b[k]
				}
			}
			return false
		})
	}

	return idx, nil
}

// Candidates returns the rules that could trigger on a press of k, longest
// (most specific) from first.
func (idx *Index) Candidates(k keycode.Code) []*layout.CompiledMapping {
	return idx.buckets[k]
}

func hasDuplicates(codes []keycode.Code) bool {
	seen := make(map[keycode.Code]bool, len(codes))
	for _, c := range codes {
		if seen[c] {
			return true
		}
		seen[c] = true
	}
	return false
}
