// Package display formats scaffold plans, progress and summaries for the
// terminal. It only renders what the scaffold package returns; it never
// decides anything about the run itself.
package display
