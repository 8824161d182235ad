package logformat

import (
	"errors"
	"fmt"
)

const (
	loggerNotConfiguredMessageConstant   = "logger not configured"
	decoderNotConfiguredMessageConstant  = "decoder not configured"
	malformedRecordErrorTemplateConstant = "record %d could not be decoded as JSON: %v"
	encodingErrorTemplateConstant        = "record %d is not valid UTF-8 after escaping"
	inputSizeErrorTemplateConstant       = "input of %d bytes exceeds the configured limit of %d bytes"
)

// ErrLoggerNotConfigured indicates a decoder was constructed without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrDecoderNotConfigured indicates a decode helper was invoked without a decoder instance.
var ErrDecoderNotConfigured = errors.New(decoderNotConfiguredMessageConstant)

// MalformedRecordError reports a non-empty record segment whose escaped payload failed to decode as JSON.
type MalformedRecordError struct {
	RecordIndex int
	Payload     string
	Cause       error
}

// Error describes the malformed record.
func (malformedError MalformedRecordError) Error() string {
	return fmt.Sprintf(malformedRecordErrorTemplateConstant, malformedError.RecordIndex, malformedError.Cause)
}

// Unwrap exposes the underlying JSON decoding failure.
func (malformedError MalformedRecordError) Unwrap() error {
	return malformedError.Cause
}

// EncodingError reports an escaped payload that is not representable as UTF-8 text.
type EncodingError struct {
	RecordIndex int
	Payload     string
}

// Error describes the encoding failure.
func (encodingError EncodingError) Error() string {
	return fmt.Sprintf(encodingErrorTemplateConstant, encodingError.RecordIndex)
}

// InputSizeError reports command output larger than the decoder's configured guard.
type InputSizeError struct {
	InputBytes int
	LimitBytes int
}

// Error describes the exceeded input guard.
func (sizeError InputSizeError) Error() string {
	return fmt.Sprintf(inputSizeErrorTemplateConstant, sizeError.InputBytes, sizeError.LimitBytes)
}
