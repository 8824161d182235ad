package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/temirov/gitjson/internal/logformat"
	"github.com/temirov/gitjson/internal/records"
	"github.com/temirov/gitjson/internal/ui"
	"github.com/temirov/gitjson/internal/utils"
	"github.com/temirov/gitjson/internal/utils/flags"
	pathutils "github.com/temirov/gitjson/internal/utils/path"
)

const (
	commandUseConstant                    = "decode"
	commandShortDescriptionConstant       = "Decode formatted log output into structured records"
	commandLongDescriptionConstant        = "decode reads log output produced with the gitjson format string from a file or standard input and writes the decoded records to standard output as JSON or YAML."
	commandExecutionErrorTemplateConstant = "decode failed: %w"
	unexpectedArgumentsMessageConstant    = "decode does not accept positional arguments"

	flagInputNameConstant                = "input"
	flagInputDescriptionConstant         = "Path to a file holding raw log output; standard input is read when omitted"
	flagOutputNameConstant               = "output"
	flagOutputDescriptionConstant        = "Encoding used for decoded records on standard output."
	flagMaxInputBytesNameConstant        = "max-input-bytes"
	flagMaxInputBytesDescriptionConstant = "Upper bound for accepted input size in bytes; zero disables the guard"

	unsupportedOutputEncodingTemplateConstant = "unsupported output encoding: %s"
	inputReadErrorTemplateConstant            = "unable to read input: %w"
	outputEncodeErrorTemplateConstant         = "unable to encode records: %w"
	outputWriteErrorTemplateConstant          = "unable to write records: %w"

	decodeCompletedMessageConstant   = "decode completed"
	recordCountLogFieldConstant      = "record_count"
	outputEncodingLogFieldConstant   = "output_encoding"
	inputSourceLogFieldConstant      = "input_source"
	standardInputSourceLabelConstant = "stdin"

	jsonIndentConstant      = "  "
	jsonPrefixConstant      = ""
	trailingNewlineConstant = "\n"
)

// OutputEncoding enumerates supported record output encodings.
type OutputEncoding string

// Supported output encodings.
const (
	OutputEncodingJSON OutputEncoding = "json"
	OutputEncodingYAML OutputEncoding = "yaml"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for decoding formatted log output.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ConfigurationProvider        func() CommandConfiguration
	HumanReadableLoggingProvider func() bool
}

type commandOptions struct {
	inputPath      string
	outputEncoding OutputEncoding
	maxInputBytes  int
}

// Build constructs the decode command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	outputFlagUsage := flags.FormatChoiceUsage(
		string(OutputEncodingJSON),
		[]string{string(OutputEncodingJSON), string(OutputEncodingYAML)},
		flagOutputDescriptionConstant,
	)

	command.Flags().String(flagInputNameConstant, "", flagInputDescriptionConstant)
	command.Flags().String(flagOutputNameConstant, "", outputFlagUsage)
	command.Flags().Int(flagMaxInputBytesNameConstant, logformat.DefaultMaxInputBytesConstant, flagMaxInputBytesDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	options, optionsError := builder.parseOptions(command)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()

	rawOutput, readError := readRawInput(command, options.inputPath)
	if readError != nil {
		return fmt.Errorf(inputReadErrorTemplateConstant, readError)
	}

	decoder, decoderError := logformat.NewDecoderWithLimit(logger, options.maxInputBytes)
	if decoderError != nil {
		return decoderError
	}

	decodedCommits, decodeError := logformat.DecodeRecords[records.Commit](decoder, rawOutput)
	if decodeError != nil {
		builder.reportFailure(command, decodeError)
		return fmt.Errorf(commandExecutionErrorTemplateConstant, decodeError)
	}

	encodedRecords, encodeError := encodeRecords(decodedCommits, options.outputEncoding)
	if encodeError != nil {
		return fmt.Errorf(outputEncodeErrorTemplateConstant, encodeError)
	}

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	if _, writeError := outputWriter.Write(encodedRecords); writeError != nil {
		return fmt.Errorf(outputWriteErrorTemplateConstant, writeError)
	}

	logger.Info(
		decodeCompletedMessageConstant,
		zap.Int(recordCountLogFieldConstant, len(decodedCommits)),
		zap.String(outputEncodingLogFieldConstant, string(options.outputEncoding)),
		zap.String(inputSourceLogFieldConstant, inputSourceLabel(options.inputPath)),
	)

	builder.reportCompletion(command, len(decodedCommits), options.outputEncoding)

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) (commandOptions, error) {
	configuration := builder.resolveConfiguration()

	inputPathValue, _ := command.Flags().GetString(flagInputNameConstant)
	trimmedInputPath := strings.TrimSpace(inputPathValue)
	if len(trimmedInputPath) == 0 {
		trimmedInputPath = strings.TrimSpace(configuration.Input)
	}

	outputValue, _ := command.Flags().GetString(flagOutputNameConstant)
	trimmedOutputValue := strings.TrimSpace(outputValue)
	if len(trimmedOutputValue) == 0 {
		trimmedOutputValue = strings.TrimSpace(configuration.Output)
	}
	if len(trimmedOutputValue) == 0 {
		trimmedOutputValue = string(OutputEncodingJSON)
	}

	outputEncoding, encodingError := parseOutputEncoding(trimmedOutputValue)
	if encodingError != nil {
		return commandOptions{}, encodingError
	}

	maxInputBytesValue := configuration.MaxInputBytes
	if command.Flags().Changed(flagMaxInputBytesNameConstant) {
		maxInputBytesValue, _ = command.Flags().GetInt(flagMaxInputBytesNameConstant)
	} else if maxInputBytesValue == 0 {
		maxInputBytesValue = logformat.DefaultMaxInputBytesConstant
	}

	return commandOptions{
		inputPath:      trimmedInputPath,
		outputEncoding: outputEncoding,
		maxInputBytes:  maxInputBytesValue,
	}, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{}
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func (builder *CommandBuilder) reportCompletion(command *cobra.Command, recordCount int, outputEncoding OutputEncoding) {
	if !builder.humanReadableLoggingEnabled() {
		return
	}
	eventFormatter := ui.NewDecodeEventFormatter(true)
	fmt.Fprintln(command.ErrOrStderr(), eventFormatter.BuildCompletionMessage(recordCount, string(outputEncoding)))
}

func (builder *CommandBuilder) reportFailure(command *cobra.Command, failure error) {
	if !builder.humanReadableLoggingEnabled() {
		return
	}
	eventFormatter := ui.NewDecodeEventFormatter(true)
	fmt.Fprintln(command.ErrOrStderr(), eventFormatter.BuildFailureMessage(failure))
}

func parseOutputEncoding(encodingValue string) (OutputEncoding, error) {
	switch OutputEncoding(strings.ToLower(encodingValue)) {
	case OutputEncodingJSON:
		return OutputEncodingJSON, nil
	case OutputEncodingYAML:
		return OutputEncodingYAML, nil
	default:
		return "", fmt.Errorf(unsupportedOutputEncodingTemplateConstant, encodingValue)
	}
}

func readRawInput(command *cobra.Command, inputPath string) (string, error) {
	if len(inputPath) > 0 {
		expandedPath := pathutils.NewHomeExpander().Expand(inputPath)
		fileContents, fileReadError := os.ReadFile(expandedPath)
		if fileReadError != nil {
			return "", fileReadError
		}
		return string(fileContents), nil
	}

	standardInputContents, standardInputError := io.ReadAll(command.InOrStdin())
	if standardInputError != nil {
		return "", standardInputError
	}
	return string(standardInputContents), nil
}

func inputSourceLabel(inputPath string) string {
	if len(inputPath) > 0 {
		return inputPath
	}
	return standardInputSourceLabelConstant
}

func encodeRecords(decodedCommits []records.Commit, outputEncoding OutputEncoding) ([]byte, error) {
	switch outputEncoding {
	case OutputEncodingYAML:
		return yaml.Marshal(decodedCommits)
	default:
		encodedRecords, marshalError := json.MarshalIndent(decodedCommits, jsonPrefixConstant, jsonIndentConstant)
		if marshalError != nil {
			return nil, marshalError
		}
		return append(encodedRecords, []byte(trailingNewlineConstant)...), nil
	}
}
