// Package decode implements the command that turns formatted log output into
// structured records on standard output.
package decode
