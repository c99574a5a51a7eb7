package planner

import (
	"fmt"
	"sort"
)

// Order sorts variants by the deterministic total order defined by
// Variant.Compare and assigns each its build slot. The input is not
// modified; a new slice is returned so slots are assigned exactly
// once, on the ordered result.
//
// Re-running the planner on an unchanged input set yields the same
// sequence regardless of discovery order; positional reconciliation
// depends on this.
func Order(variants []Variant) ([]Variant, error) {
	if len(variants) > MaxBuildSlots {
		return nil, fmt.Errorf("%w: %d variants exceed the maximum of %d",
			ErrTooManyVariants, len(variants), MaxBuildSlots)
	}

	ordered := make([]Variant, len(variants))
	copy(ordered, variants)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Compare(ordered[j]) < 0
	})

	for i := range ordered {
		ordered[i].BuildSlot = i
	}
	return ordered, nil
}
