package domain

// ProjectType is the closed classification vocabulary for repositories.
type ProjectType string

// ProjectType values.
const (
	ProjectWebApp        ProjectType = "web_app"
	ProjectAIML          ProjectType = "ai_ml"
	ProjectMobileApp     ProjectType = "mobile_app"
	ProjectScraping      ProjectType = "scraping"
	ProjectCompetitive   ProjectType = "competitive_programming"
	ProjectDocumentation ProjectType = "documentation"
	ProjectBlockchain    ProjectType = "blockchain"
)

// PRType is the closed classification vocabulary for pull requests.
type PRType string

// PRType values.
const (
	PRFeature     PRType = "feature"
	PRBugfix      PRType = "bugfix"
	PRRefactor    PRType = "refactor"
	PRDocs        PRType = "docs"
	PRSecurity    PRType = "security"
	PRPerformance PRType = "performance"
)

// Relation is the kind of a fact triple in the knowledge store.
type Relation string

// Relation values.
const (
	// RelationProjectFeature links a project type to a suggested feature.
	RelationProjectFeature Relation = "project_type"

	// RelationFeatureDescription links a feature to its description.
	RelationFeatureDescription Relation = "feature"

	// RelationPRAnalysis links a PR type to an analysis focus area.
	RelationPRAnalysis Relation = "pr_type"

	// RelationAnalysisDescription links an analysis area to its description.
	RelationAnalysisDescription Relation = "analysis"

	// RelationFilePattern links a filename substring to a PR type.
	RelationFilePattern Relation = "file_pattern"
)

// Fact is a (relation, subject, value) triple in the knowledge store.
type Fact struct {
	Relation Relation
	Subject  string
	Value    string
}

// RepoMetadata is the subset of repository metadata consumed by the
// classifier. Missing fields are empty, never an error.
type RepoMetadata struct {
	Name        string
	Language    string
	Description string
	Topics      []string
}

// FileChange describes one changed file in a pull request.
type FileChange struct {
	Filename  string
	Status    string
	Additions int
	Deletions int
	// Patch holds at most the first 500 characters of the diff.
	Patch string
}

// PRMetadata is the pull request detail consumed by the PR analysis flow.
type PRMetadata struct {
	Title              string
	Body               string
	State              string
	Number             int
	Author             string
	CreatedAt          string
	UpdatedAt          string
	Mergeable          *bool
	Additions          int
	Deletions          int
	ChangedFilesCount  int
	Commits            int
	ChangedFiles       []string
	FileChanges        []FileChange
	CommentsCount      int
	ReviewCommentCount int
	Labels             []string
	Assignees          []string
	RequestedReviewers []string
	BaseBranch         string
	HeadBranch         string
	URL                string
}

// FeatureSuggestion is one fact-store derived feature with its seeded
// description, as surfaced in the repository report.
type FeatureSuggestion struct {
	Name        string
	Description string
}

// AnalysisFinding is one PR analysis focus area with its description.
type AnalysisFinding struct {
	Area        string
	Description string
	PRType      PRType
}
