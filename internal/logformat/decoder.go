package logformat

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// DefaultMaxInputBytesConstant bounds decoder input when no explicit limit is configured.
	DefaultMaxInputBytesConstant = 64 * 1024 * 1024

	recordPatternTemplateConstant = `(?s)(.*?)%s(?:\n\n\s*(\d+) files? changed(?:, (\d+) insertions?\(\+\))?(?:, (\d+) deletions?\(-\))?)?`

	recordBodyGroupIndexConstant   = 1
	filesChangedGroupIndexConstant = 2
	insertionsGroupIndexConstant   = 3
	deletionsGroupIndexConstant    = 4

	recordDecodedMessageConstant        = "record decoded"
	emptyRecordSkippedMessageConstant   = "empty record segment skipped"
	recordIndexLogFieldNameConstant     = "record_index"
	filesChangedLogFieldNameConstant    = "files_changed"
	decodedRecordCountLogFieldConstant  = "record_count"
	decodeCompletedMessageConstant      = "record decoding completed"
	decodeInputBytesLogFieldConstant    = "input_bytes"
	decodeRejectedOversizedMessageConst = "input rejected by size guard"
)

var recordPattern = regexp.MustCompile(
	fmt.Sprintf(recordPatternTemplateConstant, regexp.QuoteMeta(RecordTerminatorConstant)),
)

// ChangeSummary carries the optional diffstat trailer counters reported after a record.
// Counters are nil when the corresponding trailer clause was absent.
type ChangeSummary struct {
	FilesChanged *int
	Insertions   *int
	Deletions    *int
}

// ChangeSummaryReceiver marks record types able to absorb diffstat trailer counters.
type ChangeSummaryReceiver interface {
	SetChangeSummary(summary ChangeSummary)
}

// Decoder splits formatted command output into record segments and decodes them as JSON.
// A decoder holds no mutable state and is safe for concurrent use.
type Decoder struct {
	logger        *zap.Logger
	maxInputBytes int
}

// NewDecoder constructs a decoder guarded by the default input-size limit.
func NewDecoder(logger *zap.Logger) (*Decoder, error) {
	return NewDecoderWithLimit(logger, DefaultMaxInputBytesConstant)
}

// NewDecoderWithLimit constructs a decoder with an explicit input-size guard; zero disables the guard.
func NewDecoderWithLimit(logger *zap.Logger, maxInputBytes int) (*Decoder, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	return &Decoder{logger: logger, maxInputBytes: maxInputBytes}, nil
}

// DecodeRecords converts raw command output into decoded records of RecordType, preserving input order.
//
// Empty output yields an empty slice. Record segments that are empty after
// trimming are skipped. A non-empty segment that fails to decode aborts the
// batch with a MalformedRecordError; escaped payloads that are not valid UTF-8
// abort with an EncodingError. Types whose pointer implements
// ChangeSummaryReceiver additionally receive the diffstat trailer counters
// matched after their segment.
func DecodeRecords[RecordType any](decoder *Decoder, commandOutput string) ([]RecordType, error) {
	if decoder == nil {
		return nil, ErrDecoderNotConfigured
	}

	trimmedOutput := strings.TrimSpace(commandOutput)
	if len(trimmedOutput) == 0 {
		return []RecordType{}, nil
	}

	if decoder.maxInputBytes > 0 && len(trimmedOutput) > decoder.maxInputBytes {
		decoder.logger.Warn(
			decodeRejectedOversizedMessageConst,
			zap.Int(decodeInputBytesLogFieldConstant, len(trimmedOutput)),
		)
		return nil, InputSizeError{InputBytes: len(trimmedOutput), LimitBytes: decoder.maxInputBytes}
	}

	recordMatches := recordPattern.FindAllStringSubmatch(trimmedOutput, -1)
	decodedRecords := make([]RecordType, 0, len(recordMatches))

	for matchIndex, recordMatch := range recordMatches {
		recordBody := strings.TrimSpace(recordMatch[recordBodyGroupIndexConstant])
		if len(recordBody) == 0 {
			decoder.logger.Debug(emptyRecordSkippedMessageConstant, zap.Int(recordIndexLogFieldNameConstant, matchIndex))
			continue
		}

		escapedPayload := EscapeRecordPayload(recordBody)
		if !utf8.ValidString(escapedPayload) {
			return nil, EncodingError{RecordIndex: matchIndex, Payload: escapedPayload}
		}

		var decodedRecord RecordType
		if unmarshalError := json.Unmarshal([]byte(escapedPayload), &decodedRecord); unmarshalError != nil {
			return nil, MalformedRecordError{RecordIndex: matchIndex, Payload: escapedPayload, Cause: unmarshalError}
		}

		changeSummary := parseChangeSummary(recordMatch)
		if summaryReceiver, receivesSummary := any(&decodedRecord).(ChangeSummaryReceiver); receivesSummary {
			summaryReceiver.SetChangeSummary(changeSummary)
		}

		decoder.logger.Debug(
			recordDecodedMessageConstant,
			zap.Int(recordIndexLogFieldNameConstant, matchIndex),
			zap.Intp(filesChangedLogFieldNameConstant, changeSummary.FilesChanged),
		)

		decodedRecords = append(decodedRecords, decodedRecord)
	}

	decoder.logger.Debug(
		decodeCompletedMessageConstant,
		zap.Int(decodedRecordCountLogFieldConstant, len(decodedRecords)),
	)

	return decodedRecords, nil
}

// DecodeFirstRecord returns the first decoded record, or nil when the output holds no records.
func DecodeFirstRecord[RecordType any](decoder *Decoder, commandOutput string) (*RecordType, error) {
	decodedRecords, decodeError := DecodeRecords[RecordType](decoder, commandOutput)
	if decodeError != nil {
		return nil, decodeError
	}
	if len(decodedRecords) == 0 {
		return nil, nil
	}
	return &decodedRecords[0], nil
}

func parseChangeSummary(recordMatch []string) ChangeSummary {
	return ChangeSummary{
		FilesChanged: parseOptionalCounter(recordMatch[filesChangedGroupIndexConstant]),
		Insertions:   parseOptionalCounter(recordMatch[insertionsGroupIndexConstant]),
		Deletions:    parseOptionalCounter(recordMatch[deletionsGroupIndexConstant]),
	}
}

func parseOptionalCounter(counterText string) *int {
	if len(counterText) == 0 {
		return nil
	}
	counterValue, conversionError := strconv.Atoi(counterText)
	if conversionError != nil {
		return nil
	}
	return &counterValue
}
