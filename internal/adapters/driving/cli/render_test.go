package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

func TestRenderRepositoryReport_Sections(t *testing.T) {
	out := renderRepositoryReport(sampleRepoReport())

	assert.Contains(t, out, "Repository Analysis")
	assert.Contains(t, out, "acme/widgets")
	assert.Contains(t, out, "web_app")
	assert.Contains(t, out, "multi-agent synthesis")
	assert.Contains(t, out, "User Authentication: Add user accounts")
	assert.Contains(t, out, "Add Advanced Search")
	assert.Contains(t, out, "2-3 weeks")
	assert.NotContains(t, out, "Issue created")
	assert.NotContains(t, out, "deterministic template")
}

func TestRenderRepositoryReport_FallbackAndIssue(t *testing.T) {
	r := sampleRepoReport()
	r.Fallback = true
	r.Issue = &domain.CreatedIssue{
		Number: 7,
		Title:  "Add Advanced Search",
		URL:    "https://github.com/acme/widgets/issues/7",
	}

	out := renderRepositoryReport(r)

	assert.Contains(t, out, "deterministic template")
	assert.Contains(t, out, "Issue created: #7 Add Advanced Search")
	assert.Contains(t, out, "issues/7")
}

func TestRenderRepositoryReport_DirectAnalysisOmitsAgents(t *testing.T) {
	r := sampleRepoReport()
	r.Method = domain.MethodDirect
	r.AgentsDiscovered = 0
	r.AgentsUsed = 0
	r.SelectedAgents = nil

	out := renderRepositoryReport(r)

	assert.Contains(t, out, "direct analysis")
	assert.NotContains(t, out, "Agents discovered")
}

func TestRenderPRReport_Sections(t *testing.T) {
	r := samplePRReport()
	r.Changes.SignificantChanges = []domain.FileChange{
		{Filename: "server.py", Status: "modified", Additions: 80, Deletions: 12},
	}

	out := renderPRReport(r)

	assert.Contains(t, out, "Pull Request Analysis")
	assert.Contains(t, out, "acme/widgets#42")
	assert.Contains(t, out, "knowledge-base synthesis")
	assert.Contains(t, out, "bugfix")
	assert.Contains(t, out, "server.py (+80/-12)")
	assert.Contains(t, out, "PR Overview: Fixes a crash")
	assert.Contains(t, out, "Improve parser robustness")
}

func TestRenderPRReport_NoTrailingNewline(t *testing.T) {
	out := renderPRReport(samplePRReport())
	assert.False(t, strings.HasSuffix(out, "\n"))
}
