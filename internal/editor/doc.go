// Package editor resolves which external editor to open a workspace with,
// infers whether invoking it blocks until the user is done, and launches it.
//
// Resolution order: an explicit override, then SCRATCH_EDITOR, VISUAL and
// EDITOR, then a platform probe (VS Code on PATH, macOS open, Windows start,
// xdg-open). Wait inference is a heuristic; callers must confirm completion
// with the user when an invocation is not known to block.
package editor
