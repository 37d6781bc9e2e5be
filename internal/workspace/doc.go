// Package workspace manages scratch workspaces: uniquely named directories
// (scratch-<language>-<suffix>) created directly under the OS temp root.
//
// It provides the containment check that bounds every destructive operation,
// discovery of the owning workspace from any path inside it, template
// materialization, the non-overwriting recursive copy used when saving, and
// the single-target and bulk cleanup operations.
package workspace
