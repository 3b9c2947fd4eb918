package junit_test

import (
	"encoding/xml"
	"os"
	"testing"

	"github.com/radiofrance/xmlreport/pkg/junit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRawLogs(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile("../../test/fixtures/junit/junit-android-test.xml")
	require.NoError(t, err)

	suites, err := junit.ParseRawLogs(data)
	require.NoError(t, err)
	require.Len(t, suites, 1)

	suite := suites[0]
	assert.Equal(t, "me.proton.core.test.LoginTests", suite.Name)
	assert.Equal(t, "3", suite.Tests)
	assert.Equal(t, "1", suite.Failures)
	assert.Equal(t, "2022-10-20T18:29:26", suite.Timestamp)
	require.Len(t, suite.TestCases, 3)

	assert.Equal(t, junit.TestCase{
		XMLName:   xml.Name{Local: "testcase"},
		ClassName: "me.proton.core.test.LoginTests",
		Name:      "loginWithValidCredentials",
		Time:      "4.1",
	}, suite.TestCases[0])

	failed := suite.TestCases[1]
	require.NotNil(t, failed.Failure)
	assert.Equal(t, "Expected error banner", failed.Failure.Message)
	assert.Contains(t, failed.Failure.Content, "LoginTests.kt:42")
	assert.Equal(t, "Starting login", failed.SystemOut)

	assert.NotNil(t, suite.TestCases[2].Skipped)
}

func TestParseRawLogs_Roots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          string
		expectedSuites []string
		expectError    bool
	}{
		{
			name:           "single testsuite",
			input:          `<testsuite name="a"><testcase name="t"/></testsuite>`,
			expectedSuites: []string{"a"},
		},
		{
			name:           "testsuites wrapper",
			input:          `<testsuites><testsuite name="a"/><testsuite name="b"/></testsuites>`,
			expectedSuites: []string{"a", "b"},
		},
		{
			name:        "unknown root",
			input:       `<coverage/>`,
			expectError: true,
		},
		{
			name:        "not xml",
			input:       `lorem ipsum`,
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			suites, err := junit.ParseRawLogs([]byte(test.input))
			if test.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			var names []string
			for _, suite := range suites {
				names = append(names, suite.Name)
			}
			assert.Equal(t, test.expectedSuites, names)
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	input := `<testsuites>
  <testsuite name="a">
    <testcase name="ok"/>
    <testcase name="ko"><failure message="boom"/></testcase>
  </testsuite>
  <testsuite name="b">
    <testcase name="crash"><error message="npe"/></testcase>
    <testcase name="ignored"><skipped/></testcase>
  </testsuite>
</testsuites>`

	summary, err := junit.Summarize([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, junit.Summary{Suites: 2, Tests: 4, Failures: 1, Errors: 1, Skipped: 1}, summary)
}
