package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/temirov/gitjson/internal/utils/path"
)

const (
	testHomeDirectoryConstant           = "/home/tester"
	testBareTildeCaseNameConstant       = "bare_tilde"
	testTildeSlashCaseNameConstant      = "tilde_slash_prefix"
	testAbsolutePathCaseNameConstant    = "absolute_path_untouched"
	testRelativePathCaseNameConstant    = "relative_path_untouched"
	testProviderFailureCaseNameConstant = "provider_failure_passes_through"
	testTildeUserPrefixCaseNameConstant = "tilde_user_prefix_untouched"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name          string
		provider      pathutils.HomeDirectoryProvider
		candidatePath string
		expectedPath  string
	}{
		{
			name:          testBareTildeCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: "~",
			expectedPath:  testHomeDirectoryConstant,
		},
		{
			name:          testTildeSlashCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: "~/logs/output.txt",
			expectedPath:  filepath.Join(testHomeDirectoryConstant, "logs", "output.txt"),
		},
		{
			name:          testAbsolutePathCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: "/var/log/output.txt",
			expectedPath:  "/var/log/output.txt",
		},
		{
			name:          testRelativePathCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: "output.txt",
			expectedPath:  "output.txt",
		},
		{
			name:          testProviderFailureCaseNameConstant,
			provider:      func() (string, error) { return "", errors.New("no home") },
			candidatePath: "~/output.txt",
			expectedPath:  "~/output.txt",
		},
		{
			name:          testTildeUserPrefixCaseNameConstant,
			provider:      func() (string, error) { return testHomeDirectoryConstant, nil },
			candidatePath: "~other/output.txt",
			expectedPath:  "~other/output.txt",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(testCase.provider)
			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.candidatePath))
		})
	}
}
