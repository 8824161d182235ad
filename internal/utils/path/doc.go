// Package pathutils provides filesystem path helpers shared by commands that
// accept user-supplied locations.
package pathutils
