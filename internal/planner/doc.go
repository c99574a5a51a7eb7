// Package planner decides which APK variants a multi-project export
// produces, and keeps that decision stable across builds.
//
// The planner generates deterministic export plans. It proves that all
// projects are distinguishable at install time, expands variants along
// the ABI axis, assigns each variant a build slot, and reconciles a
// fresh plan against the previous build log so unchanged variants keep
// their revision numbers.
//
// Key responsibilities:
//   - Validate pairwise install-time differentiation of manifests
//   - Expand base variants along ABI/density/locale axes
//   - Impose a deterministic total order and assign build slots
//   - Reconcile against a previous plan, rejecting structural drift
package planner
