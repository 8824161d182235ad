package utils

import "context"

// configurationPathContextKey keys the resolved configuration file path in command contexts.
type configurationPathContextKey struct{}

// WithConfigurationFilePath returns a context carrying the resolved configuration file path.
func WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	if parentContext == nil {
		parentContext = context.Background()
	}
	return context.WithValue(parentContext, configurationPathContextKey{}, configurationFilePath)
}

// ConfigurationFilePathFromContext reports the configuration file path stored in executionContext, if any.
func ConfigurationFilePathFromContext(executionContext context.Context) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	configurationFilePath, pathAvailable := executionContext.Value(configurationPathContextKey{}).(string)
	return configurationFilePath, pathAvailable
}
