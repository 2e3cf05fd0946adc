// Package examples holds the three storage-duration programs as functions
// that print to an io.Writer, so the standalone commands and the storage CLI
// share one implementation.
package examples
