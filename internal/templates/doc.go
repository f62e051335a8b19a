// Package templates renders the README written into scaffolded projects.
package templates
