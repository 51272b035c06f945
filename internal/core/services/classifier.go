package services

import (
	"strings"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// MatchRule identifies which cascade rule produced a classification, so
// every decision stays explainable.
type MatchRule string

// MatchRule values, in cascade priority order.
const (
	RuleDescriptionKeyword MatchRule = "description_keyword"
	RuleNameKeyword        MatchRule = "name_keyword"
	RuleTopic              MatchRule = "topic"
	RuleLanguage           MatchRule = "language"
	RuleFilePattern        MatchRule = "file_pattern"
	RuleTextKeyword        MatchRule = "text_keyword"
	RuleDefault            MatchRule = "default"
)

// Classification is a repository type tag plus the rule and signal that
// produced it.
type Classification struct {
	Type   domain.ProjectType
	Rule   MatchRule
	Signal string
}

// PRClassification is a PR type tag plus the rule and signal that
// produced it.
type PRClassification struct {
	Type   domain.PRType
	Rule   MatchRule
	Signal string
}

// keywordGroup binds a project type to its trigger keywords. Groups are
// tested in slice order; the first hit wins, so a description mentioning
// several domains resolves deterministically.
type keywordGroup struct {
	typ      domain.ProjectType
	keywords []string
}

// descriptionGroups is the highest-confidence signal: free-text
// description keywords. AI/ML is tested before scraping before
// documentation.
var descriptionGroups = []keywordGroup{
	{domain.ProjectAIML, []string{"ai/ml", "machine learning", "ml", "ai", "artificial intelligence", "neural", "model", "tensorflow", "pytorch"}},
	{domain.ProjectScraping, []string{"scrap", "scraping", "crawler", "spider", "harvest", "data collection", "web scraping"}},
	{domain.ProjectDocumentation, []string{"documentation", "docs", "guide", "tutorial", "reference", "manual", "learning resource"}},
}

// nameGroups matches against the repository name, second in priority.
var nameGroups = []keywordGroup{
	{domain.ProjectScraping, []string{"scrap", "crawler", "spider", "harvest", "trends", "twitter", "instagram", "facebook"}},
	{domain.ProjectCompetitive, []string{"leet", "leetcode", "algorithm", "competitive", "contest", "cph", "coding"}},
	{domain.ProjectDocumentation, []string{"docs", "documentation", "guide", "tutorial", "reference", "manual"}},
}

// topicGroups matches against the declared topic tags, third in priority.
var topicGroups = []keywordGroup{
	{domain.ProjectAIML, []string{"machine-learning", "ai", "ml", "tensorflow", "pytorch", "scikit-learn", "data-science"}},
	{domain.ProjectMobileApp, []string{"android", "ios", "mobile", "flutter", "react-native"}},
}

// languageTypes maps a primary language to a project type, last resort
// before the default.
var languageTypes = map[string]domain.ProjectType{
	"swift":    domain.ProjectMobileApp,
	"kotlin":   domain.ProjectMobileApp,
	"dart":     domain.ProjectMobileApp,
	"solidity": domain.ProjectBlockchain,
}

// ClassifyRepository maps repository metadata onto the closed project type
// vocabulary through a strict priority cascade: description keywords beat
// name keywords beat topics beat language, and web_app is the fallback.
// The returned Classification records which rule and signal fired.
func ClassifyRepository(meta *domain.RepoMetadata) Classification {
	if meta == nil {
		return Classification{Type: domain.ProjectWebApp, Rule: RuleDefault}
	}

	name := strings.ToLower(meta.Name)
	description := strings.ToLower(meta.Description)
	language := strings.ToLower(meta.Language)
	topics := make(map[string]bool, len(meta.Topics))
	for _, t := range meta.Topics {
		topics[strings.ToLower(t)] = true
	}

	if description != "" {
		for _, group := range descriptionGroups {
			for _, kw := range group.keywords {
				if strings.Contains(description, kw) {
					logger.Debug("classifier: %s from description keyword %q", group.typ, kw)
					return Classification{Type: group.typ, Rule: RuleDescriptionKeyword, Signal: kw}
				}
			}
		}
	}

	for _, group := range nameGroups {
		for _, kw := range group.keywords {
			if strings.Contains(name, kw) {
				logger.Debug("classifier: %s from name keyword %q", group.typ, kw)
				return Classification{Type: group.typ, Rule: RuleNameKeyword, Signal: kw}
			}
		}
	}

	for _, group := range topicGroups {
		for _, kw := range group.keywords {
			if topics[kw] {
				logger.Debug("classifier: %s from topic %q", group.typ, kw)
				return Classification{Type: group.typ, Rule: RuleTopic, Signal: kw}
			}
		}
	}

	if typ, ok := languageTypes[language]; ok {
		logger.Debug("classifier: %s from language %q", typ, language)
		return Classification{Type: typ, Rule: RuleLanguage, Signal: language}
	}

	logger.Debug("classifier: no rule fired, defaulting to web_app")
	return Classification{Type: domain.ProjectWebApp, Rule: RuleDefault}
}

// prKeywordGroup binds a PR type to its trigger keywords over title+body.
type prKeywordGroup struct {
	typ      domain.PRType
	keywords []string
}

// prTextGroups are evaluated in fixed order; unlike the repository
// cascade, every matching group contributes a type because a PR can
// legitimately be several things at once.
var prTextGroups = []prKeywordGroup{
	{domain.PRBugfix, []string{"fix", "bug", "issue", "error", "problem", "resolve"}},
	{domain.PRFeature, []string{"add", "new", "implement", "feature", "enhance"}},
	{domain.PRRefactor, []string{"refactor", "restructure", "reorganize", "cleanup"}},
	{domain.PRDocs, []string{"documentation", "readme", "docs", "guide"}},
	{domain.PRSecurity, []string{"security", "vulnerability", "auth", "permission"}},
	{domain.PRPerformance, []string{"performance", "optimize", "speed", "benchmark"}},
}

// filePatterns are the filename substrings looked up against the
// file_pattern facts, in fixed order.
var filePatterns = []string{"test", "spec", "readme", "doc", "security", "auth", "perf", "benchmark"}

// Classifier classifies pull requests using text keywords and the
// file-pattern facts of the knowledge store.
type Classifier struct {
	facts driven.FactStore
}

// NewClassifier creates a PR classifier backed by the given fact store.
func NewClassifier(facts driven.FactStore) *Classifier {
	return &Classifier{facts: facts}
}

// ClassifyPRText classifies a PR from its title and body keywords.
// Defaults to feature when nothing matches.
func (c *Classifier) ClassifyPRText(title, body string) []PRClassification {
	combined := strings.ToLower(title + " " + body)

	var out []PRClassification
	for _, group := range prTextGroups {
		for _, kw := range group.keywords {
			if strings.Contains(combined, kw) {
				out = append(out, PRClassification{Type: group.typ, Rule: RuleTextKeyword, Signal: kw})
				break
			}
		}
	}
	if len(out) == 0 {
		out = []PRClassification{{Type: domain.PRFeature, Rule: RuleDefault}}
	}
	return out
}

// ClassifyPRFiles classifies a PR from its changed-file paths via the
// file_pattern facts. Defaults to feature when nothing matches.
func (c *Classifier) ClassifyPRFiles(changedFiles []string) []PRClassification {
	var out []PRClassification
	seen := map[domain.PRType]bool{}

	for _, pattern := range filePatterns {
		matched := ""
		for _, path := range changedFiles {
			if strings.Contains(strings.ToLower(path), pattern) {
				matched = path
				break
			}
		}
		if matched == "" {
			continue
		}
		for _, value := range c.facts.FactsFor(domain.RelationFilePattern, pattern) {
			typ := domain.PRType(value)
			if !seen[typ] {
				seen[typ] = true
				out = append(out, PRClassification{Type: typ, Rule: RuleFilePattern, Signal: pattern})
			}
		}
	}
	if len(out) == 0 {
		out = []PRClassification{{Type: domain.PRFeature, Rule: RuleDefault}}
	}
	return out
}

// ClassifyPR runs both PR classifiers and unions their results,
// deduplicated with insertion order kept. Neither side overrides the
// other: a security fix with tests is both security and feature.
func (c *Classifier) ClassifyPR(meta *domain.PRMetadata) []domain.PRType {
	text := c.ClassifyPRText(meta.Title, meta.Body)
	files := c.ClassifyPRFiles(meta.ChangedFiles)

	var out []domain.PRType
	seen := map[domain.PRType]bool{}
	for _, cls := range append(text, files...) {
		if !seen[cls.Type] {
			seen[cls.Type] = true
			out = append(out, cls.Type)
		}
	}
	logger.Debug("classifier: PR types %v", out)
	return out
}
