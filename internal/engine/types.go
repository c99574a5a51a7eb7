package engine

import "apkplan/internal/planner"

// PlanRequest represents a request to compute and persist an export
// plan.
type PlanRequest struct {
	// ConfigPath is the export session configuration file.
	ConfigPath string

	// LogPath optionally overrides the build log location from the
	// config file.
	LogPath string

	// Target is the export mode (release or clean).
	Target Target

	// DryRun computes and reconciles without writing the log.
	DryRun bool
}

// PlanResult represents the result of a plan computation.
type PlanResult struct {
	// Plan is the finalized export plan.
	Plan planner.Plan

	// Reconciled is true if a previous build log was found and the
	// plan was reconciled against it.
	Reconciled bool

	// LogPath is the build log location used.
	LogPath string

	// Written is true if the build log was (re)written.
	Written bool
}

// CheckRequest represents a request to validate the export setup
// without touching the build log.
type CheckRequest struct {
	// ConfigPath is the export session configuration file.
	ConfigPath string
}

// CheckResult represents the outcome of a validation run.
type CheckResult struct {
	// Plan is the plan that a release export would compute, before
	// reconciliation.
	Plan planner.Plan
}

// ShowLogRequest represents a request to decode an existing build log.
type ShowLogRequest struct {
	// LogPath is the build log to read.
	LogPath string
}

// ShowLogResult represents a decoded build log.
type ShowLogResult struct {
	// Plan is the persisted plan as recorded in the log.
	Plan planner.Plan
}
