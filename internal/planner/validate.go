package planner

import (
	"fmt"

	"apkplan/internal/manifest"
)

// acceptedManifest pairs a validated descriptor with the manifest file
// it came from, for diagnostics in later comparisons.
type acceptedManifest struct {
	descriptor manifest.Descriptor
	path       string
}

// Validator incrementally proves that a set of manifests is a legal,
// unambiguous multi-variant export. Descriptors are added one at a
// time; each is compared against every previously accepted one.
type Validator struct {
	appPackage string
	accepted   []acceptedManifest
}

// NewValidator creates a Validator for the given application package.
func NewValidator(appPackage string) *Validator {
	return &Validator{appPackage: appPackage}
}

// Add validates one descriptor against the configured package and all
// previously accepted descriptors. On success the descriptor is
// retained for subsequent comparisons.
//
// The install mechanism selects one APK per device using minSdkVersion
// first, then screen size and GL constraints. If two variants tie on
// all three, installation is non-deterministic, so the plan is
// rejected here rather than at install time.
func (v *Validator) Add(d manifest.Descriptor, manifestPath string) error {
	if d.Package != v.appPackage {
		return fmt.Errorf("%s: %w: found %q, expected %q",
			manifestPath, ErrPackageMismatch, d.Package, v.appPackage)
	}
	if d.DeclaresVersionCode {
		return fmt.Errorf("%s: %w", manifestPath, ErrVersionCodeDeclared)
	}
	if d.MinSDK == manifest.MinSDKCodename {
		return fmt.Errorf("%s: %w", manifestPath, ErrUnsupportedCodename)
	}

	for _, prev := range v.accepted {
		if err := differentiates(d, manifestPath, prev); err != nil {
			return err
		}
	}

	v.accepted = append(v.accepted, acceptedManifest{descriptor: d, path: manifestPath})
	return nil
}

// differentiates checks that two manifests can be told apart at
// install time. Differences in minSdkVersion, screen support (sizes
// only) or GL ES version are accepted; ABI splits are not visible at
// the manifest level and never count.
func differentiates(d manifest.Descriptor, path string, prev acceptedManifest) error {
	if d.MinSDK != prev.descriptor.MinSDK {
		return nil
	}

	sameScreens := d.Screens.SameSizeSupportAs(prev.descriptor.Screens)
	if sameScreens && d.GLESVersion == prev.descriptor.GLESVersion {
		return fmt.Errorf("%w:\nmanifests must differ in at least one of minSdkVersion, screen support (sizes only) or GL ES version\n%s and %s are considered identical",
			ErrIdenticalVariants, path, prev.path)
	}
	if sameScreens {
		// GL ES version alone differentiates.
		return nil
	}

	// Screen support must differentiate cleanly: both sets strictly
	// different, and orderable so an install priority exists.
	if !d.Screens.StrictlyDifferentFrom(prev.descriptor.Screens) {
		return fmt.Errorf("%w:\n%s supports %s\n%s supports %s",
			ErrAmbiguousScreenOverlap,
			path, d.Screens,
			prev.path, prev.descriptor.Screens)
	}
	if d.Screens.OverlapWith(prev.descriptor.Screens) {
		return fmt.Errorf("%w:\n%s supports %s\n%s supports %s",
			ErrIndeterminateScreenPriority,
			path, d.Screens,
			prev.path, prev.descriptor.Screens)
	}

	return nil
}
