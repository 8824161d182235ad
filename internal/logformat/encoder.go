package logformat

import (
	"fmt"
	"strings"
)

const (
	// RecordTerminatorConstant marks where a record's JSON payload ends in command output.
	RecordTerminatorConstant = "$(END_OF_LINE)$"
	// SmartQuoteConstant is the alternate quote the encoder emits in place of structural double quotes.
	SmartQuoteConstant = "”"
)

const (
	formatObjectOpeningConstant  = "{"
	formatObjectClosingConstant  = "}"
	formatFieldSeparatorConstant = ", "
	formatFieldTemplateConstant  = "%s%s%s: %s%s%s"
)

// FieldMapping pairs a JSON object key with the placeholder the log command substitutes.
type FieldMapping struct {
	JSONKey     string
	Placeholder string
}

// BuildLogFormat renders a format string that makes the log command emit one JSON-shaped record per entry.
//
// Structural quotes are rendered as the smart-quote sentinel so that literal
// double quotes inside substituted values stay distinguishable from structure
// when the decoder escapes the payload. The record terminator closes every
// record before any trailing summary text the command may append.
func BuildLogFormat(fieldMappings []FieldMapping) string {
	renderedFields := make([]string, 0, len(fieldMappings))
	for _, fieldMapping := range fieldMappings {
		renderedField := fmt.Sprintf(
			formatFieldTemplateConstant,
			SmartQuoteConstant,
			fieldMapping.JSONKey,
			SmartQuoteConstant,
			SmartQuoteConstant,
			fieldMapping.Placeholder,
			SmartQuoteConstant,
		)
		renderedFields = append(renderedFields, renderedField)
	}

	return formatObjectOpeningConstant +
		strings.Join(renderedFields, formatFieldSeparatorConstant) +
		formatObjectClosingConstant +
		RecordTerminatorConstant
}
