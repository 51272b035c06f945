package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

func TestAssessPRPriority_High(t *testing.T) {
	meta := &domain.PRMetadata{
		Title:  "Fix authentication bypass vulnerability",
		Labels: []string{"critical"},
	}
	assessment := AssessPRPriority(meta)

	// critical label (3) + security title (2)
	assert.Equal(t, 5, assessment.Score)
	assert.Equal(t, domain.PriorityHigh, assessment.Priority)
	assert.Contains(t, assessment.Factors, "Critical/Urgent labels")
	assert.Contains(t, assessment.Factors, "Security-related changes")
}

func TestAssessPRPriority_Medium(t *testing.T) {
	meta := &domain.PRMetadata{
		Title:  "Refactor template rendering",
		Labels: []string{"important"},
	}
	assessment := AssessPRPriority(meta)

	assert.Equal(t, 2, assessment.Score)
	assert.Equal(t, domain.PriorityMedium, assessment.Priority)
}

func TestAssessPRPriority_Low(t *testing.T) {
	meta := &domain.PRMetadata{Title: "Update contributors list"}
	assessment := AssessPRPriority(meta)

	assert.Equal(t, 0, assessment.Score)
	assert.Equal(t, domain.PriorityLow, assessment.Priority)
	assert.Empty(t, assessment.Factors)
}

func TestAssessPRPriority_SizeFactors(t *testing.T) {
	meta := &domain.PRMetadata{
		Title:             "Migrate module layout",
		ChangedFilesCount: 35,
		Additions:         900,
		Deletions:         400,
	}
	assessment := AssessPRPriority(meta)

	assert.Equal(t, 2, assessment.Score)
	assert.Equal(t, domain.PriorityMedium, assessment.Priority)
	assert.Contains(t, assessment.Factors, "Large number of files changed")
	assert.Contains(t, assessment.Factors, "Large code changes")
}

func TestAssessPRPriority_CriticalBeatsHighLabel(t *testing.T) {
	meta := &domain.PRMetadata{
		Title:  "Hotfix rollout",
		Labels: []string{"hotfix", "important"},
	}
	assessment := AssessPRPriority(meta)

	// Only the critical bucket scores, not both.
	assert.Equal(t, 3, assessment.Score)
}

func TestSummarizeChanges(t *testing.T) {
	changes := []domain.FileChange{
		{Filename: "server.py", Status: "modified", Additions: 40, Deletions: 20},
		{Filename: "app.js", Status: "added", Additions: 10},
		{Filename: "README.md", Status: "modified", Additions: 3},
		{Filename: "Makefile", Status: "weird-status"},
	}
	summary := SummarizeChanges(changes)

	assert.Equal(t, 4, summary.TotalFiles)
	assert.Equal(t, 3, summary.ChangeTypes["modified"]) // unknown status folds in
	assert.Equal(t, 1, summary.ChangeTypes["added"])
	assert.Equal(t, 1, summary.LanguageDist["Python"])
	assert.Equal(t, 1, summary.LanguageDist["JavaScript"])
	assert.Equal(t, 1, summary.LanguageDist["Markdown"])
	assert.Equal(t, 1, summary.LanguageDist["no_extension"])

	require.Len(t, summary.SignificantChanges, 1)
	assert.Equal(t, "server.py", summary.SignificantChanges[0].Filename)
}

func TestLanguageForFile(t *testing.T) {
	assert.Equal(t, "Go", languageForFile("main.go"))
	assert.Equal(t, "xyz", languageForFile("data.xyz"))
	assert.Equal(t, "no_extension", languageForFile("Dockerfile"))
	assert.Equal(t, "no_extension", languageForFile("trailingdot."))
}
