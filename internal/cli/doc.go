// Package cli defines the Cobra command for the scaffold-next CLI. The root
// command is the scaffolder itself; it handles flag parsing, configuration
// and output, and delegates the work to the scaffold package.
package cli
