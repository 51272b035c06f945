package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// FailureReason classifies why extraction from model output failed.
type FailureReason string

// FailureReason values.
const (
	ReasonNoJSON        FailureReason = "no_json"
	ReasonMalformedJSON FailureReason = "malformed_json"
	ReasonMissingFields FailureReason = "missing_fields"
)

// ExtractionFailure reports that model output could not be normalized into
// a canonical suggestion. It is always recovered locally: the synthesis
// engine retries or falls back, it never surfaces to the caller.
type ExtractionFailure struct {
	Reason  FailureReason
	Missing []string
}

func (e *ExtractionFailure) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("extraction failed (%s): missing %s", e.Reason, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("extraction failed (%s)", e.Reason)
}

// requiredFields is the minimum set a response must carry before the
// defaulting pass fills the rest.
var requiredFields = []string{"title", "body", "difficulty", "priority"}

// Fixed defaults substituted for absent or falsy canonical fields.
var (
	defaultTitle        = "AI-Generated Repository Enhancement"
	defaultBody         = "AI-generated feature suggestion based on repository analysis."
	defaultEstimate     = "2-3 weeks"
	defaultLabels       = []string{"enhancement", "ai-generated"}
	defaultRequirements = []string{"Implementation planning", "Code development"}
	defaultCriteria     = []string{"Feature implemented", "Tests pass"}
)

var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// jsonCandidate strips markdown fences and slices the substring between
// the first '{' and the last '}'. The second return is false when no
// properly ordered brace pair exists.
func jsonCandidate(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if m := fencedJSONPattern.FindStringSubmatch(cleaned); m != nil {
		cleaned = strings.TrimSpace(m[1])
	}
	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// ExtractSuggestion parses arbitrary model output into a fully-defaulted
// canonical suggestion. On failure it returns an *ExtractionFailure; it
// never returns a partially-filled record.
func ExtractSuggestion(raw string) (domain.Suggestion, error) {
	candidate, ok := jsonCandidate(raw)
	if !ok {
		return domain.Suggestion{}, &ExtractionFailure{Reason: ReasonNoJSON}
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return domain.Suggestion{}, &ExtractionFailure{Reason: ReasonMalformedJSON}
	}

	// Presence only: a field that is present but empty passes here and is
	// defaulted by ValidateAndFix.
	var missing []string
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return domain.Suggestion{}, &ExtractionFailure{Reason: ReasonMissingFields, Missing: missing}
	}

	return ValidateAndFix(suggestionFromFields(fields)), nil
}

// suggestionFromFields builds a suggestion from loosely-typed decoded
// JSON. Wrong-typed fields come out zero-valued and are replaced wholesale
// by ValidateAndFix.
func suggestionFromFields(fields map[string]any) domain.Suggestion {
	return domain.Suggestion{
		Title:                  stringField(fields, "title"),
		Body:                   stringField(fields, "body"),
		Difficulty:             domain.Difficulty(stringField(fields, "difficulty")),
		Priority:               domain.Priority(stringField(fields, "priority")),
		Labels:                 stringListField(fields, "labels"),
		ImplementationEstimate: stringField(fields, "implementation_estimate"),
		TechnicalRequirements:  stringListField(fields, "technical_requirements"),
		AcceptanceCriteria:     stringListField(fields, "acceptance_criteria"),
	}
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// stringListField returns the string members of a JSON array field, or nil
// when the field is absent or not a sequence.
func stringListField(fields map[string]any, key string) []string {
	list, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ValidateAndFix substitutes fixed defaults for every absent or falsy
// canonical field and coerces difficulty/priority onto their closed sets.
// The pass is idempotent: re-running it on its own output is a no-op.
func ValidateAndFix(s domain.Suggestion) domain.Suggestion {
	if s.Title == "" {
		s.Title = defaultTitle
		logger.Debug("normalizer: defaulted missing title")
	}
	if runes := []rune(s.Title); len(runes) > domain.MaxTitleLength {
		s.Title = string(runes[:domain.MaxTitleLength-3]) + "..."
	}
	if s.Body == "" {
		s.Body = defaultBody
	}
	s.Difficulty = domain.CoerceDifficulty(string(s.Difficulty))
	s.Priority = domain.CoercePriority(string(s.Priority))
	if len(s.Labels) == 0 {
		s.Labels = append([]string(nil), defaultLabels...)
	}
	if s.ImplementationEstimate == "" {
		s.ImplementationEstimate = defaultEstimate
	}
	if len(s.TechnicalRequirements) == 0 {
		s.TechnicalRequirements = append([]string(nil), defaultRequirements...)
	}
	if len(s.AcceptanceCriteria) == 0 {
		s.AcceptanceCriteria = append([]string(nil), defaultCriteria...)
	}
	return s
}

// titleRule is one (pattern, cleanup) entry in the loose-parse rule table.
type titleRule struct {
	pattern *regexp.Regexp
}

// titleRules are evaluated in order; the first match wins.
var titleRules = []titleRule{
	{regexp.MustCompile(`(?i)(?:Feature|Title|Enhancement):\s*(.+?)(?:\n|$)`)},
	{regexp.MustCompile(`(?i)(?:Suggest|Recommendation|Feature):\s*(.+?)(?:\n|$)`)},
	{regexp.MustCompile(`(?i)(?:Add|Implement|Create)\s+(.+?)(?:\n|\.)`)},
}

var (
	easyPattern         = regexp.MustCompile(`(?i)\b(easy|simple|basic)\b`)
	hardPattern         = regexp.MustCompile(`(?i)\b(hard|difficult|complex|advanced)\b`)
	highPriorityPattern = regexp.MustCompile(`(?i)\b(critical|urgent|high)\b.*priority`)
	lowPriorityPattern  = regexp.MustCompile(`(?i)\b(low|minor)\b.*priority`)
)

// looseFallbackTitle is used when no title rule matches.
const looseFallbackTitle = "Repository Enhancement Suggestion"

// ParseLooseSuggestion is the secondary extraction path for direct-mode
// responses. It tries strict JSON extraction first and, on failure, fills
// slots from the free text via the ordered rule table: title from the
// first matching pattern, difficulty and priority from keyword presence,
// fixed defaults for everything else.
func ParseLooseSuggestion(raw string, repoURL string) domain.Suggestion {
	if s, err := ExtractSuggestion(raw); err == nil {
		return s
	}
	logger.Debug("normalizer: strict extraction failed, using loose slot filling")

	title := looseFallbackTitle
	for _, rule := range titleRules {
		if m := rule.pattern.FindStringSubmatch(raw); m != nil {
			title = m[1]
			break
		}
	}
	title = domain.TruncateTitle(title)
	if title == "" {
		title = looseFallbackTitle
	}

	difficulty := domain.DifficultyMedium
	if easyPattern.MatchString(raw) {
		difficulty = domain.DifficultyEasy
	} else if hardPattern.MatchString(raw) {
		difficulty = domain.DifficultyHard
	}

	priority := domain.PriorityMedium
	if highPriorityPattern.MatchString(raw) {
		priority = domain.PriorityHigh
	} else if lowPriorityPattern.MatchString(raw) {
		priority = domain.PriorityLow
	}

	return domain.Suggestion{
		Title:                  title,
		Body:                   fmt.Sprintf("Based on analysis of %s:\n\n%s\n\n---\n*Generated by direct analysis*", repoURL, raw),
		Difficulty:             difficulty,
		Priority:               priority,
		Labels:                 []string{"enhancement", "ai-suggested"},
		ImplementationEstimate: "1-3 weeks",
		TechnicalRequirements: []string{
			"Analysis of existing codebase",
			"Feature design and planning",
			"Implementation and testing",
		},
		AcceptanceCriteria: []string{
			"Feature meets requirements",
			"Code passes all tests",
			"Documentation is updated",
		},
	}
}
