package engine

import "errors"

var (
	// ErrInvalidProjectPath indicates a project root is missing, not a
	// directory, or has no manifest file.
	ErrInvalidProjectPath = errors.New("invalid project path")

	// ErrManifestParse wraps a manifest parsing failure.
	ErrManifestParse = errors.New("failed to parse manifest")

	// ErrUnknownTarget indicates an unrecognized build target name.
	ErrUnknownTarget = errors.New("unknown target")
)
