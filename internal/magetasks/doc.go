// Package magetasks provides the build, lint, and test tasks used by
// the Magefile.
package magetasks
