package planner

import "errors"

var (
	// ErrPackageMismatch indicates a manifest declares a package other
	// than the configured application package.
	ErrPackageMismatch = errors.New("manifest package mismatch")

	// ErrVersionCodeDeclared indicates a manifest carries an explicit
	// versionCode, which is forbidden in multi-APK export.
	ErrVersionCodeDeclared = errors.New("versionCode must not be set for multi-apk export")

	// ErrUnsupportedCodename indicates a manifest uses a platform
	// codename in minSdkVersion.
	ErrUnsupportedCodename = errors.New("codename in minSdkVersion is not supported by multi-apk export")

	// ErrIdenticalVariants indicates two manifests are identical in
	// every install-time differentiating property.
	ErrIdenticalVariants = errors.New("manifests are identical for multi-apk export")

	// ErrAmbiguousScreenOverlap indicates two manifests claim support
	// for the same screen size while relying on screen support to
	// differentiate.
	ErrAmbiguousScreenOverlap = errors.New("projects support the same screen size")

	// ErrIndeterminateScreenPriority indicates two disjoint screen
	// support sets interleave, so no install priority exists.
	ErrIndeterminateScreenPriority = errors.New("unable to compute APK priority from screen support")

	// ErrTooManyVariants indicates the plan exceeds the build slot
	// bound.
	ErrTooManyVariants = errors.New("too many variants")

	// ErrTooManyRevisions indicates a revision value at or above the
	// revision bound.
	ErrTooManyRevisions = errors.New("revision out of range")

	// ErrStructureChanged indicates the variant count differs from the
	// previous export.
	ErrStructureChanged = errors.New("export is setup differently from previous export")

	// ErrPropertiesChanged indicates a variant's persisted properties
	// differ from the previous export at the same position.
	ErrPropertiesChanged = errors.New("variant properties changed since previous export")
)
