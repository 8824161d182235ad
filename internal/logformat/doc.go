// Package logformat converts the textual output of log commands into typed records.
//
// The package pairs a format-string encoder with a record decoder. The encoder
// renders JSON-shaped format strings whose structural quotes use an alternate
// quote sentinel and whose records end with a terminator token; the decoder
// splits command output on that terminator, escapes each segment into valid
// JSON, and unmarshals it into caller-supplied record types. Both halves share
// the sentinel constants so they cannot drift apart.
package logformat
