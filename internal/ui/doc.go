// Package ui builds human-readable messages describing decode runs for
// console-oriented output.
package ui
