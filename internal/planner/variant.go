package planner

import (
	"fmt"
	"strings"

	"apkplan/internal/manifest"
)

// Bounds for the composed build identifier. Each variant's slot and
// revision occupy two decimal digits of the published versionCode.
const (
	// MaxRevisions bounds the per-variant revision counter (0-99).
	MaxRevisions = 100

	// MaxBuildSlots bounds the number of variants in one plan (0-99).
	MaxBuildSlots = 100

	// OffsetBuildSlot is the multiplier applied to the build slot in
	// the composed identifier.
	OffsetBuildSlot = MaxRevisions

	// OffsetVersionCode is the multiplier applied to the top-level
	// versionCode in the composed identifier.
	OffsetVersionCode = OffsetBuildSlot * MaxBuildSlots
)

// SoftVariant is one secondary-axis combination a variant covers
// (a density bucket or locale filter). Soft variants are recorded in
// the build log as comments only and are never read back.
type SoftVariant struct {
	Key   string
	Value string
}

// Variant is one APK to export. Its differentiating key is
// (MinSDK, Screens, GLESVersion); ABI, density and locales are
// secondary axes that never substitute for a missing primary
// difference.
type Variant struct {
	// Differentiating key.
	MinSDK      int
	Screens     manifest.ScreenSupport
	GLESVersion int

	// Secondary axes.
	ABI           string
	SplitDensity  bool
	LocaleFilters []string

	// Identity and location.
	RelativePath string
	ProjectRoot  string

	// Planning outputs. BuildSlot is assigned by Order, Revision is
	// carried forward by Reconcile.
	BuildSlot int
	Revision  int

	// SoftVariants records the density/locale combinations this
	// variant covers, for the build log audit trail only.
	SoftVariants []SoftVariant
}

// Plan is a finalized set of variants for one application.
type Plan struct {
	Package     string
	VersionCode int
	Variants    []Variant
}

// Name returns the stable token identifying this variant in the build
// log: the project's relative path, suffixed with the ABI when split.
func (v Variant) Name() string {
	if v.ABI == "" {
		return v.RelativePath
	}
	return v.RelativePath + "-" + v.ABI
}

// ComposedVersionCode composes the published numeric identifier from
// the top-level versionCode, the build slot, and the revision. The
// mapping is injective as long as slot and revision stay in bounds.
func (v Variant) ComposedVersionCode(versionCode int) int {
	return versionCode*OffsetVersionCode + v.BuildSlot*OffsetBuildSlot + v.Revision
}

// SameExportProperties reports whether the persisted properties of two
// variants match: the differentiating key plus the secondary axes.
// Slot, revision and location are excluded.
func (v Variant) SameExportProperties(o Variant) bool {
	if v.MinSDK != o.MinSDK ||
		v.Screens != o.Screens ||
		v.GLESVersion != o.GLESVersion ||
		v.ABI != o.ABI ||
		v.SplitDensity != o.SplitDensity {
		return false
	}
	if len(v.LocaleFilters) != len(o.LocaleFilters) {
		return false
	}
	for i := range v.LocaleFilters {
		if v.LocaleFilters[i] != o.LocaleFilters[i] {
			return false
		}
	}
	return true
}

// Compare imposes the deterministic total order used for build slot
// assignment: ascending minSdkVersion, then screen support by
// descending size mask (wider support first), then ascending GL ES
// version, then ABI lexicographically. The order depends only on
// differentiating attributes, never on project path or discovery
// order. Returns <0, 0 or >0.
func (v Variant) Compare(o Variant) int {
	if v.MinSDK != o.MinSDK {
		return v.MinSDK - o.MinSDK
	}
	if vm, om := v.Screens.SizeMask(), o.Screens.SizeMask(); vm != om {
		return om - vm
	}
	if v.GLESVersion != o.GLESVersion {
		return v.GLESVersion - o.GLESVersion
	}
	return strings.Compare(v.ABI, o.ABI)
}

// String renders a short human-readable description for diagnostics.
func (v Variant) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "minSdk=%d screens=%s", v.MinSDK, v.Screens)
	if v.GLESVersion != 0 {
		fmt.Fprintf(&b, " gl=%s", manifest.GLESVersionString(v.GLESVersion))
	}
	if v.ABI != "" {
		fmt.Fprintf(&b, " abi=%s", v.ABI)
	}
	return b.String()
}
