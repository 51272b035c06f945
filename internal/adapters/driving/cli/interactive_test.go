package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

func executeInteractive(t *testing.T, input string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs([]string{"interactive"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestInteractiveCmd_Quit(t *testing.T) {
	setupTestAnalyzer(t, &mockAnalyzer{})

	out, err := executeInteractive(t, "quit\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye!")
}

func TestInteractiveCmd_ShortQuitToken(t *testing.T) {
	m := setupTestAnalyzer(t, &mockAnalyzer{})

	out, err := executeInteractive(t, "Q\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye!")
	assert.Empty(t, m.repoCalls)
}

func TestInteractiveCmd_ExampleToken(t *testing.T) {
	m := setupTestAnalyzer(t, &mockAnalyzer{repoReport: sampleRepoReport()})

	out, err := executeInteractive(t, "example\nquit\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Using example repository: "+exampleRepoURL)
	require.Len(t, m.repoCalls, 1)
	assert.Equal(t, domain.RepoRef{Owner: "nitininhouse", Name: "js-assignment-2024"}, m.repoCalls[0])
}

func TestInteractiveCmd_BlankLinesSkipped(t *testing.T) {
	m := setupTestAnalyzer(t, &mockAnalyzer{repoReport: sampleRepoReport()})

	_, err := executeInteractive(t, "\n\nhttps://github.com/acme/widgets\nquit\n")

	require.NoError(t, err)
	assert.Len(t, m.repoCalls, 1)
}

func TestInteractiveCmd_AnalysisErrorKeepsLooping(t *testing.T) {
	m := setupTestAnalyzer(t, &mockAnalyzer{repoErr: assert.AnError})

	out, err := executeInteractive(t, "https://github.com/acme/widgets\nhttps://github.com/acme/gears\nquit\n")

	require.NoError(t, err)
	assert.Contains(t, out, "Analysis failed")
	assert.Len(t, m.repoCalls, 2)
}

func TestInteractiveCmd_EOFEndsLoop(t *testing.T) {
	setupTestAnalyzer(t, &mockAnalyzer{})

	out, err := executeInteractive(t, "")

	require.NoError(t, err)
	assert.Contains(t, out, "Goodbye!")
}

func TestInteractiveCmd_ShowsIdentity(t *testing.T) {
	setupTestAnalyzer(t, &mockAnalyzer{})
	prev := identityAddress
	SetIdentityAddress("agent1qexample")
	t.Cleanup(func() { identityAddress = prev })

	out, err := executeInteractive(t, "quit\n")

	require.NoError(t, err)
	assert.Contains(t, out, "agent1qexample")
}
