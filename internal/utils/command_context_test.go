package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitjson/internal/utils"
)

func TestConfigurationFilePathContextRoundTrip(testInstance *testing.T) {
	decoratedContext := utils.WithConfigurationFilePath(context.Background(), "config.yaml")

	configurationFilePath, pathAvailable := utils.ConfigurationFilePathFromContext(decoratedContext)
	require.True(testInstance, pathAvailable)
	require.Equal(testInstance, "config.yaml", configurationFilePath)
}

func TestConfigurationFilePathContextMissingValue(testInstance *testing.T) {
	_, pathAvailable := utils.ConfigurationFilePathFromContext(context.Background())
	require.False(testInstance, pathAvailable)

	_, nilContextAvailable := utils.ConfigurationFilePathFromContext(nil)
	require.False(testInstance, nilContextAvailable)

	decoratedContext := utils.WithConfigurationFilePath(nil, "fallback.yaml")
	configurationFilePath, fallbackAvailable := utils.ConfigurationFilePathFromContext(decoratedContext)
	require.True(testInstance, fallbackAvailable)
	require.Equal(testInstance, "fallback.yaml", configurationFilePath)
}
