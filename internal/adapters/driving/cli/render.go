package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF"))
)

func field(label, value string) string {
	return fmt.Sprintf("%s %s\n", labelStyle.Render(label+":"), value)
}

// renderRepositoryReport formats a repository analysis report for the
// terminal.
func renderRepositoryReport(r *domain.RepositoryReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Repository Analysis") + "\n\n")
	b.WriteString(field("Repository", r.Repository.String()))
	b.WriteString(field("Project type", string(r.ProjectType)))
	b.WriteString(field("Method", string(r.Method)))

	if r.AgentsDiscovered > 0 {
		b.WriteString(field("Agents discovered", fmt.Sprintf("%d", r.AgentsDiscovered)))
		b.WriteString(field("Agents used", fmt.Sprintf("%d", r.AgentsUsed)))
		if len(r.SelectedAgents) > 0 {
			b.WriteString(field("Selected agents", strings.Join(r.SelectedAgents, ", ")))
		}
	}

	if len(r.Features) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Suggested Focus Areas") + "\n")
		for _, f := range r.Features {
			b.WriteString(fmt.Sprintf("  - %s: %s\n", f.Name, f.Description))
		}
	}

	b.WriteString("\n" + sectionStyle.Render("Suggestion") + "\n")
	b.WriteString(field("Title", r.Suggestion.Title))
	b.WriteString(field("Difficulty", string(r.Suggestion.Difficulty)))
	b.WriteString(field("Priority", string(r.Suggestion.Priority)))
	b.WriteString(field("Estimate", r.Suggestion.ImplementationEstimate))
	b.WriteString(field("Labels", strings.Join(r.Suggestion.Labels, ", ")))
	if r.Fallback {
		b.WriteString(warnStyle.Render("Synthesis fell back to the deterministic template.") + "\n")
	}

	if r.Issue != nil {
		b.WriteString("\n" + successStyle.Render(
			fmt.Sprintf("Issue created: #%d %s", r.Issue.Number, r.Issue.Title)) + "\n")
		if r.Issue.URL != "" {
			b.WriteString(field("URL", r.Issue.URL))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderPRReport formats a pull request analysis report for the terminal.
func renderPRReport(r *domain.PRReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Pull Request Analysis") + "\n\n")
	b.WriteString(field("Pull request", r.PullRequest.String()))
	b.WriteString(field("Method", string(r.Method)))

	types := make([]string, 0, len(r.PRTypes))
	for _, t := range r.PRTypes {
		types = append(types, string(t))
	}
	b.WriteString(field("Change types", strings.Join(types, ", ")))

	b.WriteString("\n" + sectionStyle.Render("Changes") + "\n")
	b.WriteString(field("Files changed", fmt.Sprintf("%d", r.Changes.TotalFiles)))
	if len(r.Changes.LanguageDist) > 0 {
		parts := make([]string, 0, len(r.Changes.LanguageDist))
		for lang, n := range r.Changes.LanguageDist {
			parts = append(parts, fmt.Sprintf("%s (%d)", lang, n))
		}
		b.WriteString(field("Languages", strings.Join(parts, ", ")))
	}
	for _, fc := range r.Changes.SignificantChanges {
		b.WriteString(fmt.Sprintf("  - %s (+%d/-%d)\n", fc.Filename, fc.Additions, fc.Deletions))
	}

	if len(r.Findings) > 0 {
		b.WriteString("\n" + sectionStyle.Render("Findings") + "\n")
		for _, f := range r.Findings {
			b.WriteString(fmt.Sprintf("  - %s: %s\n", f.Area, f.Description))
		}
	}

	b.WriteString("\n" + sectionStyle.Render("Review Priority") + "\n")
	b.WriteString(field("Priority", string(r.Assessment.Priority)))
	b.WriteString(field("Score", fmt.Sprintf("%d", r.Assessment.Score)))
	for _, f := range r.Assessment.Factors {
		b.WriteString(fmt.Sprintf("  - %s\n", f))
	}

	b.WriteString("\n" + sectionStyle.Render("Suggestion") + "\n")
	b.WriteString(field("Title", r.Suggestion.Title))
	b.WriteString(field("Difficulty", string(r.Suggestion.Difficulty)))
	b.WriteString(field("Priority", string(r.Suggestion.Priority)))

	if r.Issue != nil {
		b.WriteString("\n" + successStyle.Render(
			fmt.Sprintf("Issue created: #%d %s", r.Issue.Number, r.Issue.Title)) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
