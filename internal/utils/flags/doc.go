// Package flags provides helpers for rendering consistent command-line flag
// usage strings across commands.
package flags
