package planner

import (
	"apkplan/internal/manifest"
)

// ProjectSettings carries the multi-APK settings of one project into
// expansion: the split axes from the project configuration plus the
// ABI folders discovered on disk.
type ProjectSettings struct {
	SplitByABI     bool
	SplitByDensity bool
	LocaleFilters  []string

	// ABIs is the list of discovered native-library folders. Only
	// consulted when SplitByABI is set. Empty is not an error here:
	// downstream build tooling decides whether an empty ABI split is
	// acceptable.
	ABIs []string
}

// Expand turns one validated descriptor into the variants to export
// for its project. Without an ABI split this is a single variant
// carrying the density/locale settings as secondary metadata. With an
// ABI split, one variant per discovered ABI is produced, all sharing
// the base variant's differentiating key.
//
// Variants expanded from the same descriptor are soft variants of one
// another and are exempt from the differentiation rules.
func Expand(d manifest.Descriptor, relativePath, projectRoot string, settings ProjectSettings) []Variant {
	base := Variant{
		MinSDK:        d.MinSDK,
		Screens:       d.Screens,
		GLESVersion:   d.GLESVersion,
		SplitDensity:  settings.SplitByDensity,
		LocaleFilters: settings.LocaleFilters,
		RelativePath:  relativePath,
		ProjectRoot:   projectRoot,
		SoftVariants:  softVariants(settings),
	}

	if !settings.SplitByABI || len(settings.ABIs) == 0 {
		return []Variant{base}
	}

	variants := make([]Variant, 0, len(settings.ABIs))
	for _, abi := range settings.ABIs {
		v := base
		v.ABI = abi
		variants = append(variants, v)
	}
	return variants
}

// Standard density buckets for density soft variants.
var densityBuckets = []string{"ldpi", "mdpi", "hdpi", "xhdpi"}

// softVariants builds the ordered audit-trail entries for the
// secondary-axis combinations a variant covers. These are written to
// the build log as comments and never re-parsed; siblings are fully
// re-derived from project configuration on every run.
func softVariants(settings ProjectSettings) []SoftVariant {
	var soft []SoftVariant
	if settings.SplitByDensity {
		for _, d := range densityBuckets {
			soft = append(soft, SoftVariant{Key: d, Value: "density=" + d})
		}
	}
	for _, l := range settings.LocaleFilters {
		soft = append(soft, SoftVariant{Key: "locale-" + l, Value: "locale=" + l})
	}
	return soft
}
