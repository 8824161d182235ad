// Package formatcmd implements the command that prints the log format string
// consumed by the decode command.
package formatcmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitjson/internal/logformat"
	"github.com/temirov/gitjson/internal/records"
)

const (
	commandUseConstant                 = "format"
	commandShortDescriptionConstant    = "Print the log format string paired with the decoder"
	commandLongDescriptionConstant     = "format prints the --pretty format string whose output the decode command understands, for example: git log --pretty=format:\"$(gitjson format)\" --shortstat | gitjson decode"
	unexpectedArgumentsMessageConstant = "format does not accept positional arguments"
	formatPrintedMessageConstant       = "format string printed"
	fieldCountLogFieldNameConstant     = "field_count"
	formatOutputTemplateConstant       = "%s\n"
)

var errUnexpectedArguments = errors.New(unexpectedArgumentsMessageConstant)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command that prints the format string.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the format command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errUnexpectedArguments
	}

	fieldMappings := records.DefaultCommitFieldMappings()
	renderedFormat := logformat.BuildLogFormat(fieldMappings)

	if _, writeError := fmt.Fprintf(command.OutOrStdout(), formatOutputTemplateConstant, renderedFormat); writeError != nil {
		return writeError
	}

	builder.resolveLogger().Debug(
		formatPrintedMessageConstant,
		zap.Int(fieldCountLogFieldNameConstant, len(fieldMappings)),
	)

	return nil
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
