package services

import (
	"fmt"
	"strings"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

// issueFooter is appended to every generated issue body.
const issueFooter = "*This issue was created by AI agents analyzing the repository structure and suggesting enhancements.*"

// BuildIssuePayload formats a canonical suggestion into the external
// issue-creation schema. Title and labels pass through verbatim; the body
// renders the fixed section layout with requirements as bullets and
// acceptance criteria as checkboxes. Pure function, no I/O.
func BuildIssuePayload(s domain.Suggestion) domain.IssuePayload {
	var b strings.Builder

	fmt.Fprintf(&b, "## Feature Description\n%s\n\n", s.Body)

	b.WriteString("## Implementation Details\n")
	fmt.Fprintf(&b, "**Difficulty Level**: %s\n", s.Difficulty)
	fmt.Fprintf(&b, "**Priority**: %s\n", s.Priority)
	fmt.Fprintf(&b, "**Estimated Time**: %s\n\n", s.ImplementationEstimate)

	b.WriteString("## Technical Requirements\n")
	for _, req := range s.TechnicalRequirements {
		fmt.Fprintf(&b, "- %s\n", req)
	}
	b.WriteString("\n## Acceptance Criteria\n")
	for _, criteria := range s.AcceptanceCriteria {
		fmt.Fprintf(&b, "- [ ] %s\n", criteria)
	}

	b.WriteString("\n---\n")
	b.WriteString(issueFooter)
	b.WriteString("\n")

	return domain.IssuePayload{
		Title:     s.Title,
		Body:      b.String(),
		Assignees: []string{},
		Labels:    s.Labels,
	}
}
