package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driving"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// Ensure AnalyzerService implements the interface.
var _ driving.Analyzer = (*AnalyzerService)(nil)

// AnalyzerService orchestrates the full analysis pipeline: gather
// opinions from advisors and the knowledge base, synthesize one canonical
// suggestion, and build the issue payload.
type AnalyzerService struct {
	gateway    *AdvisorGateway
	engine     *SynthesisEngine
	classifier *Classifier
	facts      driven.FactStore
	repos      driven.RepositoryService

	// createIssues controls whether the payload is actually posted to
	// GitHub at the end of a run.
	createIssues bool
}

// NewAnalyzerService creates the analysis orchestrator.
func NewAnalyzerService(
	gateway *AdvisorGateway,
	engine *SynthesisEngine,
	classifier *Classifier,
	facts driven.FactStore,
	repos driven.RepositoryService,
) *AnalyzerService {
	return &AnalyzerService{
		gateway:    gateway,
		engine:     engine,
		classifier: classifier,
		facts:      facts,
		repos:      repos,
	}
}

// SetCreateIssues enables posting the synthesized payload as a GitHub
// issue at the end of each run.
func (s *AnalyzerService) SetCreateIssues(v bool) {
	s.createIssues = v
}

// AnalyzeRepository runs the repository flow: metadata fetch,
// classification, knowledge-base feature report, marketplace gathering
// with direct-analysis degrade, synthesis, payload construction.
func (s *AnalyzerService) AnalyzeRepository(ctx context.Context, ref domain.RepoRef) (*domain.RepositoryReport, error) {
	logger.Section("Repository Analysis")
	logger.Info("analyzing %s", ref)

	meta, err := s.repos.FetchRepoMetadata(ctx, ref)
	if err != nil {
		// Missing metadata degrades classification, it does not abort.
		logger.Warn("repository metadata unavailable: %v", err)
		meta = nil
	}

	classification := ClassifyRepository(meta)
	logger.Info("classified as %s (rule=%s signal=%q)", classification.Type, classification.Rule, classification.Signal)

	features := s.FeatureReport(classification.Type)

	report := &domain.RepositoryReport{
		Repository:  ref,
		ProjectType: classification.Type,
		Features:    features,
	}

	discovered := s.gateway.DiscoverAgents(ctx, ref)
	report.AgentsDiscovered = len(discovered)

	if len(discovered) == 0 {
		logger.Warn("no agents discovered, degrading to direct analysis")
		return s.directRepositoryAnalysis(ctx, ref, report)
	}

	selected := s.gateway.SelectAgents(ctx, discovered, ref)
	if len(selected) == 0 {
		logger.Warn("no agents selected, degrading to direct analysis")
		return s.directRepositoryAnalysis(ctx, ref, report)
	}

	report.Method = domain.MethodMarketplace
	report.AgentsUsed = len(selected)
	for _, agent := range selected {
		report.SelectedAgents = append(report.SelectedAgents, agent.DisplayName())
	}

	s.gateway.DispatchAll(ctx, selected, ref)
	opinions := s.gateway.CollectOpinions(ctx, selected, ref)

	if factOpinion, ok := featureOpinion(classification.Type, features); ok {
		opinions = append(opinions, factOpinion)
	}

	result := s.engine.Synthesize(ctx, opinions, ref)
	report.Suggestion = result.Suggestion
	report.Fallback = result.Fallback
	report.Payload = BuildIssuePayload(result.Suggestion)

	if err := s.maybeCreateIssue(ctx, ref, report.Payload, &report.Issue); err != nil {
		return nil, err
	}
	return report, nil
}

// directRepositoryAnalysis is the designed degrade when the marketplace
// path yields no usable agents: a single strict-JSON model call.
func (s *AnalyzerService) directRepositoryAnalysis(ctx context.Context, ref domain.RepoRef, report *domain.RepositoryReport) (*domain.RepositoryReport, error) {
	report.Method = domain.MethodDirect

	suggestion, err := s.engine.DirectAnalyze(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", ref, err)
	}

	report.Suggestion = suggestion
	report.Payload = BuildIssuePayload(suggestion)

	if err := s.maybeCreateIssue(ctx, ref, report.Payload, &report.Issue); err != nil {
		return nil, err
	}
	return report, nil
}

// AnalyzePR runs the pull request flow: metadata fetch, dual
// classification, fact expansion into analysis findings, priority
// assessment, and synthesis of the findings into one suggestion.
func (s *AnalyzerService) AnalyzePR(ctx context.Context, ref domain.PRRef) (*domain.PRReport, error) {
	logger.Section("Pull Request Analysis")
	logger.Info("analyzing %s", ref)

	meta, err := s.repos.FetchPRMetadata(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", ref, err)
	}

	prTypes := s.classifier.ClassifyPR(meta)
	changes := SummarizeChanges(meta.FileChanges)
	findings := s.prFindings(meta, prTypes, changes)
	assessment := AssessPRPriority(meta)

	repoRef := domain.RepoRef{Owner: ref.Owner, Name: ref.Name}
	opinions := []domain.Opinion{
		{Source: "fact-store", Text: findingsText(findings)},
		{Source: "pr-metadata", Text: prDetailText(meta)},
	}

	result := s.engine.Synthesize(ctx, opinions, repoRef)

	report := &domain.PRReport{
		PullRequest: ref,
		Method:      domain.MethodKnowledge,
		PRTypes:     prTypes,
		Findings:    findings,
		Changes:     changes,
		Assessment:  assessment,
		Suggestion:  result.Suggestion,
		Fallback:    result.Fallback,
	}
	report.Payload = BuildIssuePayload(result.Suggestion)

	if err := s.maybeCreateIssue(ctx, repoRef, report.Payload, &report.Issue); err != nil {
		return nil, err
	}
	return report, nil
}

// maybeCreateIssue posts the payload when issue creation is enabled.
func (s *AnalyzerService) maybeCreateIssue(ctx context.Context, ref domain.RepoRef, payload domain.IssuePayload, out **domain.CreatedIssue) error {
	if !s.createIssues {
		return nil
	}
	issue, err := s.repos.CreateIssue(ctx, ref, payload)
	if err != nil {
		return fmt.Errorf("create issue in %s: %w", ref, err)
	}
	logger.Info("created issue #%d: %s", issue.Number, issue.Title)
	*out = issue
	return nil
}

// FeatureReport looks up the suggested features for a project type and
// resolves their seeded descriptions. An empty lookup is the knowledge
// base abstaining: only then are the generic CI/CD and monitoring
// fallback features appended.
func (s *AnalyzerService) FeatureReport(projectType domain.ProjectType) []domain.FeatureSuggestion {
	features := s.facts.FactsFor(domain.RelationProjectFeature, string(projectType))

	out := make([]domain.FeatureSuggestion, 0, len(features))
	for _, feature := range features {
		description := fmt.Sprintf("Enhancement for %s", strings.ReplaceAll(feature, "_", " "))
		if descs := s.facts.FactsFor(domain.RelationFeatureDescription, feature); len(descs) > 0 {
			description = descs[0]
		}
		out = append(out, domain.FeatureSuggestion{
			Name:        titleCase(feature),
			Description: description,
		})
	}

	if len(out) == 0 {
		logger.Debug("no features for %s, appending generic fallback pair", projectType)
		for _, feature := range []string{"ci_cd_pipeline", "monitoring_dashboard"} {
			description := ""
			if descs := s.facts.FactsFor(domain.RelationFeatureDescription, feature); len(descs) > 0 {
				description = descs[0]
			}
			out = append(out, domain.FeatureSuggestion{
				Name:        titleCase(feature),
				Description: description,
			})
		}
	}
	return out
}

// prFindings assembles the ordered analysis findings: overview, change
// summary, fact-store analysis areas per PR type, then the data-driven
// advisories.
func (s *AnalyzerService) prFindings(meta *domain.PRMetadata, prTypes []domain.PRType, changes domain.ChangeSummary) []domain.AnalysisFinding {
	findings := []domain.AnalysisFinding{
		{
			Area: "PR Overview",
			Description: fmt.Sprintf("Title: %s, Files: %d, +%d/-%d",
				meta.Title, changes.TotalFiles, meta.Additions, meta.Deletions),
		},
		{
			Area: "Change Analysis",
			Description: fmt.Sprintf("Languages: %s, Labels: %s",
				strings.Join(mapKeys(changes.LanguageDist), ", "), strings.Join(meta.Labels, ", ")),
		},
	}

	for _, prType := range prTypes {
		for _, area := range s.facts.FactsFor(domain.RelationPRAnalysis, string(prType)) {
			descs := s.facts.FactsFor(domain.RelationAnalysisDescription, area)
			if len(descs) == 0 {
				continue
			}
			findings = append(findings, domain.AnalysisFinding{
				Area:        titleCase(area),
				Description: descs[0],
				PRType:      prType,
			})
		}
	}

	if meta.Mergeable != nil && !*meta.Mergeable {
		findings = append(findings, domain.AnalysisFinding{
			Area:        "Merge Conflicts",
			Description: "This PR has merge conflicts that need to be resolved before merging",
		})
	}
	if meta.CommentsCount == 0 && meta.ReviewCommentCount == 0 {
		findings = append(findings, domain.AnalysisFinding{
			Area:        "Review Status",
			Description: "No comments or reviews yet - consider requesting reviews from team members",
		})
	}
	return findings
}

func findingsText(findings []domain.AnalysisFinding) string {
	var b strings.Builder
	b.WriteString("Knowledge base analysis findings:\n")
	for _, f := range findings {
		fmt.Fprintf(&b, "- %s: %s\n", f.Area, f.Description)
	}
	return b.String()
}

func prDetailText(meta *domain.PRMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pull request %q by %s (%s)\n", meta.Title, meta.Author, meta.State)
	fmt.Fprintf(&b, "Files changed: %d, +%d/-%d, commits: %d\n",
		meta.ChangedFilesCount, meta.Additions, meta.Deletions, meta.Commits)
	if meta.Body != "" {
		fmt.Fprintf(&b, "Description:\n%s\n", meta.Body)
	}
	for _, fc := range meta.FileChanges {
		fmt.Fprintf(&b, "- %s (%s, +%d/-%d)\n", fc.Filename, fc.Status, fc.Additions, fc.Deletions)
	}
	return b.String()
}

// featureOpinion renders the knowledge-base feature report as one
// advisor opinion. An empty feature list means the fact store abstains.
func featureOpinion(projectType domain.ProjectType, features []domain.FeatureSuggestion) (domain.Opinion, bool) {
	if len(features) == 0 {
		return domain.Opinion{}, false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Knowledge base suggestions for a %s project:\n", projectType)
	for _, f := range features {
		fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Description)
	}
	return domain.Opinion{Source: "fact-store", Text: b.String()}, true
}

func mapKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// titleCase converts snake_case identifiers to display form:
// "data_storage" becomes "Data Storage".
func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
