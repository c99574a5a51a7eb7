package planner

import "fmt"

// Reconcile carries per-variant revisions forward from a previous
// export and rejects structural drift. Any difference in variant count
// or in the persisted properties at a fixed position means a
// previously published identifier would silently change meaning, which
// requires a manual versionCode bump instead.
//
// previous may be nil (no prior export); current is then returned
// unchanged with all revisions at zero. The input is not modified; a
// new slice with revisions populated is returned.
func Reconcile(current, previous []Variant) ([]Variant, error) {
	if previous == nil {
		return current, nil
	}

	if len(previous) != len(current) {
		return nil, fmt.Errorf("%w: previous export had %d variants, current has %d\nany change in the multi-apk configuration requires an increment of the versionCode",
			ErrStructureChanged, len(previous), len(current))
	}

	reconciled := make([]Variant, len(current))
	copy(reconciled, current)
	for i := range reconciled {
		rev := previous[i].Revision
		if rev < 0 || rev >= MaxRevisions {
			return nil, fmt.Errorf("%w: valid revision values are 0-%d, got %d",
				ErrTooManyRevisions, MaxRevisions-1, rev)
		}
		reconciled[i].Revision = rev
		if !reconciled[i].SameExportProperties(previous[i]) {
			return nil, fmt.Errorf("%w at slot %d: previous was %s, current is %s\nany change in the multi-apk configuration requires an increment of the versionCode",
				ErrPropertiesChanged, i, previous[i], reconciled[i])
		}
	}
	return reconciled, nil
}
