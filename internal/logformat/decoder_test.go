package logformat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/gitjson/internal/logformat"
)

const (
	testEmptyInputCaseNameConstant      = "empty_input"
	testWhitespaceInputCaseNameConstant = "whitespace_only_input"
	testNoTerminatorCaseNameConstant    = "no_terminator_occurrences"
	testFullTrailerCaseNameConstant     = "record_with_full_trailer"
	testMissingTrailerCaseNameConstant  = "record_without_trailer"
	testSingularTrailerCaseNameConstant = "record_with_singular_trailer"
	testInsertionsOnlyCaseNameConstant  = "record_with_insertions_only"
	testTwoRecordsCaseNameConstant      = "two_records_in_order"
	testEmbeddedQuoteCaseNameConstant   = "embedded_quote_preserved_as_data"
	testMultilineBodyCaseNameConstant   = "record_body_spanning_lines"
	testTrailerBindingCaseNameConstant  = "trailer_binds_to_preceding_record"
	testTrailerDigitsRecordConstant     = "3 files changed, 10 insertions(+), 2 deletions(-)"
	testFirstIdentifierConstant         = "abc"
	testSecondIdentifierConstant        = "def"
)

// changeAwareRecord absorbs diffstat trailer counters during decoding.
type changeAwareRecord struct {
	Identifier   string `json:"id"`
	Subject      string `json:"subject"`
	FilesChanged *int
	Insertions   *int
	Deletions    *int
}

// SetChangeSummary implements logformat.ChangeSummaryReceiver.
func (record *changeAwareRecord) SetChangeSummary(summary logformat.ChangeSummary) {
	record.FilesChanged = summary.FilesChanged
	record.Insertions = summary.Insertions
	record.Deletions = summary.Deletions
}

// plainRecord decodes without any change-summary capability.
type plainRecord struct {
	Identifier string `json:"id"`
}

func newTestDecoder(testInstance *testing.T) *logformat.Decoder {
	testInstance.Helper()

	decoder, creationError := logformat.NewDecoder(zap.NewNop())
	require.NoError(testInstance, creationError)
	return decoder
}

func quotedToken(value string) string {
	return logformat.SmartQuoteConstant + value + logformat.SmartQuoteConstant
}

func identifierRecordBody(identifier string) string {
	return "{" + quotedToken("id") + ":" + quotedToken(identifier) + "}"
}

func intPointer(value int) *int {
	return &value
}

func TestDecoderConstructionValidation(testInstance *testing.T) {
	decoder, creationError := logformat.NewDecoder(nil)
	require.Nil(testInstance, decoder)
	require.ErrorIs(testInstance, creationError, logformat.ErrLoggerNotConfigured)
}

func TestDecodeRecordsRequiresDecoder(testInstance *testing.T) {
	decodedRecords, decodeError := logformat.DecodeRecords[plainRecord](nil, identifierRecordBody(testFirstIdentifierConstant))
	require.Nil(testInstance, decodedRecords)
	require.ErrorIs(testInstance, decodeError, logformat.ErrDecoderNotConfigured)
}

func TestDecodeRecordsBehavior(testInstance *testing.T) {
	testCases := []struct {
		name            string
		commandOutput   string
		expectedRecords []changeAwareRecord
	}{
		{
			name:            testEmptyInputCaseNameConstant,
			commandOutput:   "",
			expectedRecords: []changeAwareRecord{},
		},
		{
			name:            testWhitespaceInputCaseNameConstant,
			commandOutput:   "  \n\t ",
			expectedRecords: []changeAwareRecord{},
		},
		{
			name:            testNoTerminatorCaseNameConstant,
			commandOutput:   identifierRecordBody(testFirstIdentifierConstant),
			expectedRecords: []changeAwareRecord{},
		},
		{
			name: testFullTrailerCaseNameConstant,
			commandOutput: identifierRecordBody(testFirstIdentifierConstant) +
				logformat.RecordTerminatorConstant +
				"\n\n " + testTrailerDigitsRecordConstant,
			expectedRecords: []changeAwareRecord{
				{
					Identifier:   testFirstIdentifierConstant,
					FilesChanged: intPointer(3),
					Insertions:   intPointer(10),
					Deletions:    intPointer(2),
				},
			},
		},
		{
			name:          testMissingTrailerCaseNameConstant,
			commandOutput: identifierRecordBody(testFirstIdentifierConstant) + logformat.RecordTerminatorConstant,
			expectedRecords: []changeAwareRecord{
				{Identifier: testFirstIdentifierConstant},
			},
		},
		{
			name: testSingularTrailerCaseNameConstant,
			commandOutput: identifierRecordBody(testFirstIdentifierConstant) +
				logformat.RecordTerminatorConstant +
				"\n\n 1 file changed",
			expectedRecords: []changeAwareRecord{
				{Identifier: testFirstIdentifierConstant, FilesChanged: intPointer(1)},
			},
		},
		{
			name: testInsertionsOnlyCaseNameConstant,
			commandOutput: identifierRecordBody(testFirstIdentifierConstant) +
				logformat.RecordTerminatorConstant +
				"\n\n 2 files changed, 4 insertions(+)",
			expectedRecords: []changeAwareRecord{
				{Identifier: testFirstIdentifierConstant, FilesChanged: intPointer(2), Insertions: intPointer(4)},
			},
		},
		{
			name: testTwoRecordsCaseNameConstant,
			commandOutput: identifierRecordBody(testFirstIdentifierConstant) +
				logformat.RecordTerminatorConstant +
				"\n\n" +
				identifierRecordBody(testSecondIdentifierConstant) +
				logformat.RecordTerminatorConstant,
			expectedRecords: []changeAwareRecord{
				{Identifier: testFirstIdentifierConstant},
				{Identifier: testSecondIdentifierConstant},
			},
		},
		{
			name: testTrailerBindingCaseNameConstant,
			commandOutput: identifierRecordBody(testFirstIdentifierConstant) +
				logformat.RecordTerminatorConstant +
				"\n\n " + testTrailerDigitsRecordConstant + "\n" +
				identifierRecordBody(testSecondIdentifierConstant) +
				logformat.RecordTerminatorConstant,
			expectedRecords: []changeAwareRecord{
				{
					Identifier:   testFirstIdentifierConstant,
					FilesChanged: intPointer(3),
					Insertions:   intPointer(10),
					Deletions:    intPointer(2),
				},
				{Identifier: testSecondIdentifierConstant},
			},
		},
		{
			name: testEmbeddedQuoteCaseNameConstant,
			commandOutput: "{" + quotedToken("id") + ":" + quotedToken(testFirstIdentifierConstant) + "," +
				quotedToken("subject") + ":" + logformat.SmartQuoteConstant + `fix "edge" case` + logformat.SmartQuoteConstant + "}" +
				logformat.RecordTerminatorConstant,
			expectedRecords: []changeAwareRecord{
				{Identifier: testFirstIdentifierConstant, Subject: `fix "edge" case`},
			},
		},
		{
			name: testMultilineBodyCaseNameConstant,
			commandOutput: "{" + quotedToken("id") + ":" + quotedToken(testFirstIdentifierConstant) + "," +
				quotedToken("subject") + ":" + logformat.SmartQuoteConstant + "first line\nsecond line" + logformat.SmartQuoteConstant + "}" +
				logformat.RecordTerminatorConstant,
			expectedRecords: []changeAwareRecord{
				{Identifier: testFirstIdentifierConstant, Subject: "first line\nsecond line"},
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			decoder := newTestDecoder(testInstance)

			decodedRecords, decodeError := logformat.DecodeRecords[changeAwareRecord](decoder, testCase.commandOutput)
			require.NoError(testInstance, decodeError)
			require.Equal(testInstance, testCase.expectedRecords, decodedRecords)
		})
	}
}

func TestDecodeRecordsMalformedRecordAbortsBatch(testInstance *testing.T) {
	commandOutput := "not a json object" + logformat.RecordTerminatorConstant

	decodedRecords, decodeError := logformat.DecodeRecords[plainRecord](newTestDecoder(testInstance), commandOutput)
	require.Nil(testInstance, decodedRecords)

	var malformedError logformat.MalformedRecordError
	require.ErrorAs(testInstance, decodeError, &malformedError)
	require.Equal(testInstance, 0, malformedError.RecordIndex)
	require.NotEmpty(testInstance, malformedError.Payload)
	require.Error(testInstance, errors.Unwrap(malformedError))
}

func TestDecodeRecordsInvalidEncodingAbortsBatch(testInstance *testing.T) {
	commandOutput := "{" + quotedToken("id") + ":" + quotedToken(testFirstIdentifierConstant+"\xff\xfe") + "}" +
		logformat.RecordTerminatorConstant

	decodedRecords, decodeError := logformat.DecodeRecords[plainRecord](newTestDecoder(testInstance), commandOutput)
	require.Nil(testInstance, decodedRecords)

	var encodingError logformat.EncodingError
	require.ErrorAs(testInstance, decodeError, &encodingError)
	require.Equal(testInstance, 0, encodingError.RecordIndex)
	require.NotEmpty(testInstance, encodingError.Payload)
}

func TestDecodeRecordsInputSizeGuard(testInstance *testing.T) {
	decoder, creationError := logformat.NewDecoderWithLimit(zap.NewNop(), 8)
	require.NoError(testInstance, creationError)

	commandOutput := identifierRecordBody(testFirstIdentifierConstant) + logformat.RecordTerminatorConstant

	decodedRecords, decodeError := logformat.DecodeRecords[plainRecord](decoder, commandOutput)
	require.Nil(testInstance, decodedRecords)

	var sizeError logformat.InputSizeError
	require.ErrorAs(testInstance, decodeError, &sizeError)
	require.Equal(testInstance, 8, sizeError.LimitBytes)
	require.Greater(testInstance, sizeError.InputBytes, sizeError.LimitBytes)
}

func TestDecodeRecordsSkipsEmptySegments(testInstance *testing.T) {
	observerCore, observedLogs := observer.New(zap.DebugLevel)
	decoder, creationError := logformat.NewDecoder(zap.New(observerCore))
	require.NoError(testInstance, creationError)

	commandOutput := logformat.RecordTerminatorConstant + "\n\n" +
		identifierRecordBody(testFirstIdentifierConstant) + logformat.RecordTerminatorConstant

	decodedRecords, decodeError := logformat.DecodeRecords[plainRecord](decoder, commandOutput)
	require.NoError(testInstance, decodeError)
	require.Equal(testInstance, []plainRecord{{Identifier: testFirstIdentifierConstant}}, decodedRecords)
	require.NotZero(testInstance, observedLogs.FilterMessage("empty record segment skipped").Len())
}

func TestDecodeRecordsWithoutSummaryCapability(testInstance *testing.T) {
	commandOutput := identifierRecordBody(testFirstIdentifierConstant) +
		logformat.RecordTerminatorConstant +
		"\n\n " + testTrailerDigitsRecordConstant

	decodedRecords, decodeError := logformat.DecodeRecords[plainRecord](newTestDecoder(testInstance), commandOutput)
	require.NoError(testInstance, decodeError)
	require.Equal(testInstance, []plainRecord{{Identifier: testFirstIdentifierConstant}}, decodedRecords)
}

func TestDecodeFirstRecord(testInstance *testing.T) {
	decoder := newTestDecoder(testInstance)

	absentRecord, absentError := logformat.DecodeFirstRecord[plainRecord](decoder, "")
	require.NoError(testInstance, absentError)
	require.Nil(testInstance, absentRecord)

	commandOutput := identifierRecordBody(testFirstIdentifierConstant) +
		logformat.RecordTerminatorConstant +
		"\n\n" +
		identifierRecordBody(testSecondIdentifierConstant) +
		logformat.RecordTerminatorConstant

	firstRecord, firstError := logformat.DecodeFirstRecord[plainRecord](decoder, commandOutput)
	require.NoError(testInstance, firstError)
	require.NotNil(testInstance, firstRecord)
	require.Equal(testInstance, testFirstIdentifierConstant, firstRecord.Identifier)
}
