package services

import (
	"strings"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

// Thresholds and weights for PR priority scoring.
const (
	criticalLabelWeight = 3
	highLabelWeight     = 2
	securityTitleWeight = 2
	manyFilesThreshold  = 20
	largeDiffThreshold  = 1000

	highPriorityScore   = 4
	mediumPriorityScore = 2
)

var (
	criticalLabels        = []string{"critical", "urgent", "hotfix"}
	highLabels            = []string{"high", "important"}
	securityTitleKeywords = []string{"security", "vulnerability", "auth"}
)

// AssessPRPriority scores a pull request's urgency from its labels, title
// keywords, and diff size, and reports the contributing factors alongside
// the resulting priority.
func AssessPRPriority(meta *domain.PRMetadata) domain.PriorityAssessment {
	score := 0
	var factors []string

	labels := make([]string, len(meta.Labels))
	for i, l := range meta.Labels {
		labels[i] = strings.ToLower(l)
	}

	if containsAny(labels, criticalLabels) {
		score += criticalLabelWeight
		factors = append(factors, "Critical/Urgent labels")
	} else if containsAny(labels, highLabels) {
		score += highLabelWeight
		factors = append(factors, "High priority labels")
	}

	title := strings.ToLower(meta.Title)
	for _, kw := range securityTitleKeywords {
		if strings.Contains(title, kw) {
			score += securityTitleWeight
			factors = append(factors, "Security-related changes")
			break
		}
	}

	if meta.ChangedFilesCount > manyFilesThreshold {
		score++
		factors = append(factors, "Large number of files changed")
	}
	if meta.Additions+meta.Deletions > largeDiffThreshold {
		score++
		factors = append(factors, "Large code changes")
	}

	priority := domain.PriorityLow
	switch {
	case score >= highPriorityScore:
		priority = domain.PriorityHigh
	case score >= mediumPriorityScore:
		priority = domain.PriorityMedium
	}

	return domain.PriorityAssessment{Priority: priority, Score: score, Factors: factors}
}

func containsAny(haystack, needles []string) bool {
	for _, h := range haystack {
		for _, n := range needles {
			if h == n {
				return true
			}
		}
	}
	return false
}

// SummarizeChanges aggregates the diff shape of a pull request: change
// status counts, a per-language distribution from file extensions, and
// files whose diff exceeds 50 changed lines.
func SummarizeChanges(changes []domain.FileChange) domain.ChangeSummary {
	summary := domain.ChangeSummary{
		TotalFiles:   len(changes),
		ChangeTypes:  map[string]int{"added": 0, "modified": 0, "deleted": 0, "renamed": 0},
		LanguageDist: map[string]int{},
	}

	for _, fc := range changes {
		status := fc.Status
		if _, ok := summary.ChangeTypes[status]; !ok {
			status = "modified"
		}
		summary.ChangeTypes[status]++

		summary.LanguageDist[languageForFile(fc.Filename)]++

		if fc.Additions+fc.Deletions > 50 {
			summary.SignificantChanges = append(summary.SignificantChanges, fc)
		}
	}
	return summary
}

var extensionLanguages = map[string]string{
	"py": "Python", "js": "JavaScript", "ts": "TypeScript",
	"java": "Java", "cpp": "C++", "c": "C", "go": "Go",
	"rs": "Rust", "php": "PHP", "rb": "Ruby", "md": "Markdown",
}

func languageForFile(filename string) string {
	ext := "no_extension"
	if i := strings.LastIndexByte(filename, '.'); i >= 0 && i < len(filename)-1 {
		ext = filename[i+1:]
	}
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	return ext
}
