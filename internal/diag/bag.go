package diag

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Bag holds a collection of diagnostics accumulated by one pass over one
// module, up to a capacity limit, so a single run can surface many issues
// at once instead of stopping at the first.
type Bag struct {
	items   []Diagnostic
	maximum uint16
}

// NewBag creates a Bag with a capacity limit. maximum <= 0 means unlimited.
func NewBag(maximum int) *Bag {
	if maximum <= 0 {
		return &Bag{maximum: ^uint16(0)}
	}
	limit, err := safecast.Conv[uint16](maximum)
	if err != nil {
		panic(fmt.Errorf("bag maximum overflow: %w", err))
	}
	return &Bag{maximum: limit}
}

// Add appends a diagnostic, honoring the capacity limit. Returns false if
// the bag is already full.
func (b *Bag) Add(d Diagnostic) bool {
	if uint16(len(b.items)) >= b.maximum {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// HasErrors reports whether any diagnostic has SevError or above.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics in the bag.
func (b *Bag) Len() int { return len(b.items) }

// Items returns a read-only view of the diagnostics. Do not mutate.
func (b *Bag) Items() []Diagnostic { return b.items }

// Merge appends another bag's diagnostics, growing capacity if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	need := len(b.items) + len(other.items)
	limit, err := safecast.Conv[uint16](need)
	if err == nil && limit > b.maximum {
		b.maximum = limit
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics deterministically: file, start, end, severity
// (descending), code (ascending).
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code.String() < dj.Code.String()
	})
}
