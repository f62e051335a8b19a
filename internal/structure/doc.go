// Package structure holds the folder layout created for new projects. The
// layout ships inside the binary as structure.yaml and is checked against an
// embedded JSON Schema, a supported format version range and the path rules
// in ValidatePath before anything uses it.
package structure
