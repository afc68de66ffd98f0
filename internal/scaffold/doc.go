// Package scaffold implements the project generation engine for the
// stackforge CLI.
//
// The engine is deliberately two-phase. BuildPlan turns a resolved
// ProjectSpec into a Plan — the full list of directories and rendered
// file bodies — without any filesystem access, so every template can be
// tested against golden expectations. Apply then writes a plan to disk
// with atomic per-file writes and whole-directory rollback on failure.
//
// Template bodies for the frontend and backend stacks live in this
// package as text/template constants; the documentation skeleton is a
// set of fixed markdown bodies with date substitution.
package scaffold
