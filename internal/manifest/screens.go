package manifest

import "strings"

// ScreenSize is one of the screen-size buckets a project can declare
// support for. Buckets are ordered from smallest to largest.
type ScreenSize int

const (
	ScreenSmall ScreenSize = iota
	ScreenNormal
	ScreenLarge
	ScreenXLarge
)

var screenSizeNames = [...]string{"small", "normal", "large", "xlarge"}

func (s ScreenSize) String() string {
	if int(s) < 0 || int(s) >= len(screenSizeNames) {
		return "unknown"
	}
	return screenSizeNames[s]
}

// ScreenSupport records which screen-size buckets a manifest supports,
// plus the compatibility flags from the supports-screens element.
// Only the size buckets participate in install-time differentiation.
type ScreenSupport struct {
	Small      bool
	Normal     bool
	Large      bool
	XLarge     bool
	Resizeable bool
	AnyDensity bool
}

// DefaultScreenSupport returns the support set used when a manifest has
// no supports-screens element: all sizes supported.
func DefaultScreenSupport() ScreenSupport {
	return ScreenSupport{
		Small:      true,
		Normal:     true,
		Large:      true,
		XLarge:     true,
		Resizeable: true,
		AnyDensity: true,
	}
}

func (s ScreenSupport) sizes() [4]bool {
	return [4]bool{s.Small, s.Normal, s.Large, s.XLarge}
}

// SupportsSize reports whether the given size bucket is supported.
func (s ScreenSupport) SupportsSize(size ScreenSize) bool {
	sz := s.sizes()
	if int(size) < 0 || int(size) >= len(sz) {
		return false
	}
	return sz[size]
}

// SameSizeSupportAs reports whether both sets support exactly the same
// size buckets. Compatibility flags are ignored: differentiation is
// decided on sizes only.
func (s ScreenSupport) SameSizeSupportAs(o ScreenSupport) bool {
	return s.sizes() == o.sizes()
}

// StrictlyDifferentFrom reports whether the two sets share no size
// bucket at all. Two variants can only be told apart by screen support
// if no device size matches both.
func (s ScreenSupport) StrictlyDifferentFrom(o ScreenSupport) bool {
	a, b := s.sizes(), o.sizes()
	for i := range a {
		if a[i] && b[i] {
			return false
		}
	}
	return true
}

// OverlapWith reports whether the two sets interleave: each supports a
// size the other does not, in a way that prevents ordering one set
// strictly below the other. Disjoint sets that interleave (e.g.
// small+large vs normal) cannot be given an install priority.
func (s ScreenSupport) OverlapWith(o ScreenSupport) bool {
	aLo, aHi, aOK := s.sizeRange()
	bLo, bHi, bOK := o.sizeRange()
	if !aOK || !bOK {
		return false
	}
	return !(aHi < bLo || bHi < aLo)
}

// sizeRange returns the smallest and largest supported size, and false
// if no size is supported at all.
func (s ScreenSupport) sizeRange() (lo, hi int, ok bool) {
	sz := s.sizes()
	lo, hi = -1, -1
	for i, v := range sz {
		if !v {
			continue
		}
		if lo == -1 {
			lo = i
		}
		hi = i
	}
	return lo, hi, lo != -1
}

// SizeMask returns a bitmask of the supported sizes, with larger sizes
// in higher bits. Used for canonical ordering of variants.
func (s ScreenSupport) SizeMask() int {
	mask := 0
	for i, v := range s.sizes() {
		if v {
			mask |= 1 << i
		}
	}
	return mask
}

// String renders the support set in the form used by the build log,
// e.g. "small|normal" or "large|xlarge|resizeable|anyDensity".
func (s ScreenSupport) String() string {
	var parts []string
	for i, v := range s.sizes() {
		if v {
			parts = append(parts, screenSizeNames[i])
		}
	}
	if s.Resizeable {
		parts = append(parts, "resizeable")
	}
	if s.AnyDensity {
		parts = append(parts, "anyDensity")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseScreenSupport parses the build-log encoding produced by String.
func ParseScreenSupport(value string) (ScreenSupport, bool) {
	var s ScreenSupport
	if value == "none" {
		return s, true
	}
	for _, part := range strings.Split(value, "|") {
		switch part {
		case "small":
			s.Small = true
		case "normal":
			s.Normal = true
		case "large":
			s.Large = true
		case "xlarge":
			s.XLarge = true
		case "resizeable":
			s.Resizeable = true
		case "anyDensity":
			s.AnyDensity = true
		default:
			return ScreenSupport{}, false
		}
	}
	return s, true
}
