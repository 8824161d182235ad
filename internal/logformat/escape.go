package logformat

import "strings"

const (
	backslashLiteralConstant      = `\`
	escapedBackslashConstant      = `\\`
	doubleForwardSlashConstant    = "//"
	quadrupleForwardSlashConstant = "////"
	doubleQuoteLiteralConstant    = `"`
	escapedDoubleQuoteConstant    = `\"`
	newlineLiteralConstant        = "\n"
	escapedNewlineConstant        = `\n`
	tabLiteralConstant            = "\t"
	escapedTabConstant            = `\t`
	carriageReturnLiteralConstant = "\r"
	escapedCarriageReturnConstant = `\r`
	nulLiteralConstant            = "\x00"
	escapedNulConstant            = `\u0000`
	backspaceLiteralConstant      = "\x08"
	escapedBackspaceConstant      = `\u0008`
)

// payloadSubstitution pairs a literal substring with its escaped replacement.
type payloadSubstitution struct {
	literal     string
	replacement string
}

// orderedPayloadSubstitutions lists the escape rules in application order.
// Quote escaping must run before the smart-quote replacement so quotes derived
// from the encoder's sentinel are emitted as plain structural quotes. The
// forward-slash doubling is a legacy compatibility rule.
var orderedPayloadSubstitutions = []payloadSubstitution{
	{literal: backslashLiteralConstant, replacement: escapedBackslashConstant},
	{literal: doubleForwardSlashConstant, replacement: quadrupleForwardSlashConstant},
	{literal: doubleQuoteLiteralConstant, replacement: escapedDoubleQuoteConstant},
	{literal: newlineLiteralConstant, replacement: escapedNewlineConstant},
	{literal: tabLiteralConstant, replacement: escapedTabConstant},
	{literal: carriageReturnLiteralConstant, replacement: escapedCarriageReturnConstant},
	{literal: nulLiteralConstant, replacement: escapedNulConstant},
	{literal: backspaceLiteralConstant, replacement: escapedBackspaceConstant},
	{literal: SmartQuoteConstant, replacement: doubleQuoteLiteralConstant},
}

// EscapeRecordPayload trims the raw record body and rewrites it into text that forms a valid JSON document.
func EscapeRecordPayload(rawPayload string) string {
	escapedPayload := strings.TrimSpace(rawPayload)
	for _, substitution := range orderedPayloadSubstitutions {
		escapedPayload = strings.ReplaceAll(escapedPayload, substitution.literal, substitution.replacement)
	}
	return escapedPayload
}
