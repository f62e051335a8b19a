// Package scaffold creates a project's folder structure under a target
// directory and optionally writes its README. It powers the root command.
// Folders are created one at a time in the given order. A failed item is
// counted and recorded, and the run goes on. Collaborators (filesystem,
// logger, README renderer, path resolution) are injected through Config so
// runs can be exercised against in-memory filesystems.
package scaffold
