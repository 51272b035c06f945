package domain

// AnalysisMethod records which strategy produced a result.
type AnalysisMethod string

// AnalysisMethod values.
const (
	// MethodMarketplace means opinions came from discovered marketplace
	// agents and were synthesized by the model.
	MethodMarketplace AnalysisMethod = "multi-agent synthesis"

	// MethodDirect means a single direct model call produced the result.
	MethodDirect AnalysisMethod = "direct analysis"

	// MethodKnowledge means the knowledge base supplied the opinions that
	// were synthesized, without marketplace agents.
	MethodKnowledge AnalysisMethod = "knowledge-base synthesis"
)

// RepositoryReport is the outcome of one repository analysis run.
type RepositoryReport struct {
	Repository       RepoRef
	Method           AnalysisMethod
	ProjectType      ProjectType
	Features         []FeatureSuggestion
	AgentsDiscovered int
	AgentsUsed       int
	SelectedAgents   []string
	Suggestion       Suggestion
	Payload          IssuePayload
	Issue            *CreatedIssue
	// Fallback is true when the deterministic template produced the
	// suggestion because model synthesis was exhausted.
	Fallback bool
}

// ChangeSummary aggregates the shape of a PR's diff.
type ChangeSummary struct {
	TotalFiles         int
	ChangeTypes        map[string]int
	LanguageDist       map[string]int
	SignificantChanges []FileChange
}

// PriorityAssessment is the scored PR priority with its contributing
// factors, so the decision stays explainable.
type PriorityAssessment struct {
	Priority Priority
	Score    int
	Factors  []string
}

// PRReport is the outcome of one pull request analysis run.
type PRReport struct {
	PullRequest PRRef
	Method      AnalysisMethod
	PRTypes     []PRType
	Findings    []AnalysisFinding
	Changes     ChangeSummary
	Assessment  PriorityAssessment
	Suggestion  Suggestion
	Payload     IssuePayload
	Issue       *CreatedIssue
	Fallback    bool
}
