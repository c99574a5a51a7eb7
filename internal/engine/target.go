package engine

import "fmt"

// Target selects the export mode. A release export demands continuity
// with the previous build log; a clean export starts from scratch,
// skipping secondary-axis expansion and reconciliation.
type Target string

const (
	TargetRelease Target = "release"
	TargetClean   Target = "clean"
)

// ParseTarget resolves a target name from the command line.
func ParseTarget(value string) (Target, error) {
	switch Target(value) {
	case TargetRelease, TargetClean:
		return Target(value), nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownTarget, value, TargetRelease, TargetClean)
	}
}
