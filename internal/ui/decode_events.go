package ui

import (
	"strconv"

	"github.com/logrusorgru/aurora"
)

const (
	decodeCompletionTemplateConstant = "Decoded %s %s as %s"
	decodeFailureTemplateConstant    = "Decoding failed: %s"
	singleRecordNounConstant         = "record"
	multipleRecordsNounConstant      = "records"
	unknownFailureMessageConstant    = "unknown error"
)

// DecodeEventFormatter builds human-readable summaries for decode runs.
type DecodeEventFormatter struct {
	colorizer aurora.Aurora
}

// NewDecodeEventFormatter constructs a formatter; colors are emitted only when enabled.
func NewDecodeEventFormatter(colorEnabled bool) DecodeEventFormatter {
	return DecodeEventFormatter{colorizer: aurora.NewAurora(colorEnabled)}
}

// BuildCompletionMessage describes a finished decode run and the encoding used for its records.
func (formatter DecodeEventFormatter) BuildCompletionMessage(recordCount int, encodingName string) string {
	recordNoun := multipleRecordsNounConstant
	if recordCount == 1 {
		recordNoun = singleRecordNounConstant
	}

	return formatter.colorizer.Sprintf(
		decodeCompletionTemplateConstant,
		formatter.colorizer.Bold(formatter.colorizer.Green(strconv.Itoa(recordCount))),
		recordNoun,
		formatter.colorizer.Cyan(encodingName),
	)
}

// BuildFailureMessage describes a decode run that ended in an error.
func (formatter DecodeEventFormatter) BuildFailureMessage(failure error) string {
	failureMessage := unknownFailureMessageConstant
	if failure != nil {
		failureMessage = failure.Error()
	}
	return formatter.colorizer.Sprintf(decodeFailureTemplateConstant, formatter.colorizer.Red(failureMessage))
}
