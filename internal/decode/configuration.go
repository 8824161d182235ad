package decode

import "github.com/temirov/gitjson/internal/logformat"

const (
	outputConfigKeySuffixConstant        = ".output"
	maxInputBytesConfigKeySuffixConstant = ".max_input_bytes"
)

// CommandConfiguration stores decode behavior loaded from configuration files.
type CommandConfiguration struct {
	Input         string `mapstructure:"input"`
	Output        string `mapstructure:"output"`
	MaxInputBytes int    `mapstructure:"max_input_bytes"`
}

// DefaultConfigurationValues returns the configuration defaults registered under configurationKey.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	return map[string]any{
		configurationKey + outputConfigKeySuffixConstant:        string(OutputEncodingJSON),
		configurationKey + maxInputBytesConfigKeySuffixConstant: logformat.DefaultMaxInputBytesConstant,
	}
}
