package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sneaxhuh/sentinel/internal/core/domain"
	"github.com/sneaxhuh/sentinel/internal/core/ports/driven"
	"github.com/sneaxhuh/sentinel/internal/logger"
)

// maxSynthesisAttempts bounds the model synthesis loop. After the last
// failed attempt the deterministic fallback takes over; the engine never
// raises and never loops further.
const maxSynthesisAttempts = 3

// excerptLength caps opinion excerpts embedded in sharpened retry prompts
// and fallback bodies.
const excerptLength = 100

// SynthesisResult is the terminal state of one synthesis run.
type SynthesisResult struct {
	Suggestion domain.Suggestion
	// Fallback is true when the deterministic template produced the
	// suggestion because all model attempts failed to normalize.
	Fallback bool
	// Attempts is how many model calls were made.
	Attempts int
}

// SynthesisEngine reduces a set of raw advisor opinions into one canonical
// suggestion: model synthesis with escalating strictness, then a
// deterministic keyword-scored fallback.
type SynthesisEngine struct {
	chat driven.ChatService
}

// NewSynthesisEngine creates a synthesis engine over the model transport.
func NewSynthesisEngine(chat driven.ChatService) *SynthesisEngine {
	return &SynthesisEngine{chat: chat}
}

// schemaInstruction is the rigid output shape demanded from the model.
const schemaInstruction = `{
    "title": "Clear GitHub issue title (max 80 chars)",
    "body": "Detailed description with implementation context and business value",
    "difficulty": "Easy OR Medium OR Hard",
    "priority": "Low OR Medium OR High",
    "labels": ["enhancement", "feature", "other-relevant-labels"],
    "implementation_estimate": "Time estimate like '2-3 weeks'",
    "technical_requirements": ["requirement1", "requirement2", "requirement3"],
    "acceptance_criteria": ["criteria1", "criteria2", "criteria3"]
}`

func synthesisPrompt(opinions []domain.Opinion, repo domain.RepoRef) string {
	var responses strings.Builder
	for i, op := range opinions {
		fmt.Fprintf(&responses, "Response %d (%s):\n%s\n\n", i+1, op.Source, op.Text)
	}

	return fmt.Sprintf(`I received multiple AI agent analyses for the repository: %s

Agent Responses:
%s
TASK: Analyze these responses and create ONE comprehensive GitHub issue for the BEST feature suggestion.

CRITICAL INSTRUCTIONS:
1. You MUST respond with ONLY valid JSON
2. No markdown, no explanations, no extra text
3. Start with { and end with }
4. Use this EXACT structure:

%s

Choose the most impactful feature. Return ONLY the JSON object, nothing else.`,
		repo.URL(), responses.String(), schemaInstruction)
}

// sharpenedPrompt drops all elaboration and restates the literal schema
// with truncated opinion excerpts. Used for attempts after the first
// normalization failure.
func sharpenedPrompt(opinions []domain.Opinion) string {
	var excerpts strings.Builder
	for _, op := range opinions {
		fmt.Fprintf(&excerpts, "- %s...\n", excerpt(op.Text, excerptLength))
	}

	return fmt.Sprintf(`Previous response was not valid JSON. Let me be extremely clear:

Analyze these repository suggestions and return ONLY a JSON object:
%s
Return exactly this format with NO other text:
{"title":"Feature name","body":"Description","difficulty":"Medium","priority":"Medium","labels":["enhancement"],"implementation_estimate":"2-3 weeks","technical_requirements":["req1","req2"],"acceptance_criteria":["criteria1","criteria2"]}`,
		excerpts.String())
}

func excerpt(text string, n int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}

// Synthesize runs the retry state machine: up to maxSynthesisAttempts
// model calls with escalating strictness, then the deterministic
// fallback. Transport errors abort only the attempt they occur in; the
// run always terminates in a complete suggestion.
func (e *SynthesisEngine) Synthesize(ctx context.Context, opinions []domain.Opinion, repo domain.RepoRef) SynthesisResult {
	logger.Section("Synthesis")
	prompt := synthesisPrompt(opinions, repo)

	for attempt := 1; attempt <= maxSynthesisAttempts; attempt++ {
		logger.Debug("synthesis attempt %d/%d", attempt, maxSynthesisAttempts)

		response, err := e.chat.Chat(ctx, uuid.NewString(), []driven.ChatMessage{{Role: "user", Content: prompt}})
		if err != nil {
			logger.Warn("synthesis attempt %d transport failure: %v", attempt, err)
			prompt = sharpenedPrompt(opinions)
			continue
		}

		suggestion, err := ExtractSuggestion(response)
		if err == nil {
			logger.Info("synthesis succeeded on attempt %d: %q", attempt, suggestion.Title)
			return SynthesisResult{Suggestion: suggestion, Attempts: attempt}
		}

		logger.Warn("synthesis attempt %d: %v", attempt, err)
		prompt = sharpenedPrompt(opinions)
	}

	logger.Warn("all synthesis attempts failed, using deterministic fallback")
	return SynthesisResult{
		Suggestion: FallbackSuggestion(opinions, repo),
		Fallback:   true,
		Attempts:   maxSynthesisAttempts,
	}
}

// DirectAnalyze is the single-advisor strategy: one model call with a
// strict JSON-shape instruction, parsed through the loose extraction
// path. It is the mandatory fallback whenever discovery or selection
// yields zero agents.
func (e *SynthesisEngine) DirectAnalyze(ctx context.Context, repo domain.RepoRef) (domain.Suggestion, error) {
	logger.Section("Direct Analysis")

	prompt := fmt.Sprintf(`Analyze the GitHub repository: %s (%s)

Based on the repository URL and common patterns, suggest ONE practical feature enhancement.

IMPORTANT: Respond with ONLY a valid JSON object in this exact format:

%s

Focus on practical, high-impact features. Return ONLY the JSON object.`,
		repo.URL(), repo.String(), schemaInstruction)

	response, err := e.chat.Chat(ctx, uuid.NewString(), []driven.ChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		return domain.Suggestion{}, fmt.Errorf("direct analysis: %w", err)
	}

	return ParseLooseSuggestion(response, repo.URL()), nil
}

// fallbackCategory is one row of the keyword-to-feature scoring table.
// Rows are scored in order and ties break toward the earlier row.
type fallbackCategory struct {
	name     string
	keywords []string
}

// fallbackCategories is the fixed scoring table for the deterministic
// fallback. "search" is the default when nothing scores.
var fallbackCategories = []fallbackCategory{
	{"authentication", []string{"auth", "login", "user", "session", "oauth", "jwt"}},
	{"search", []string{"search", "filter", "find", "query", "lookup"}},
	{"realtime", []string{"realtime", "websocket", "live", "push", "notification"}},
	{"api", []string{"api", "rest", "endpoint", "rate limit", "caching"}},
	{"ui", []string{"ui", "interface", "frontend", "user experience", "ux"}},
	{"database", []string{"database", "db", "storage", "persistence", "data"}},
	{"testing", []string{"test", "testing", "unit test", "integration"}},
	{"security", []string{"security", "secure", "encryption", "validation"}},
}

// fallbackTemplate is a pre-written suggestion skeleton for one category.
type fallbackTemplate struct {
	title      string
	body       string
	difficulty domain.Difficulty
	priority   domain.Priority
}

var fallbackTemplates = map[string]fallbackTemplate{
	"authentication": {
		title:      "Implement User Authentication System",
		body:       "Add comprehensive user authentication with secure login, registration, and session management to protect user data and enable personalized experiences.",
		difficulty: domain.DifficultyMedium,
		priority:   domain.PriorityHigh,
	},
	"search": {
		title:      "Add Advanced Search and Filtering Capabilities",
		body:       "Implement full-text search with intelligent filtering to help users quickly find relevant content and improve overall user experience.",
		difficulty: domain.DifficultyEasy,
		priority:   domain.PriorityMedium,
	},
	"realtime": {
		title:      "Add Real-time Updates and Notifications",
		body:       "Implement WebSocket-based real-time updates to keep users informed of changes and improve application responsiveness.",
		difficulty: domain.DifficultyHard,
		priority:   domain.PriorityMedium,
	},
	"api": {
		title:      "Implement REST API with Rate Limiting",
		body:       "Create a robust REST API with proper rate limiting, caching, and documentation to enable third-party integrations and improve performance.",
		difficulty: domain.DifficultyMedium,
		priority:   domain.PriorityMedium,
	},
	"ui": {
		title:      "Modernize User Interface and Experience",
		body:       "Redesign the user interface with a consistent component library and accessibility improvements to streamline common workflows.",
		difficulty: domain.DifficultyMedium,
		priority:   domain.PriorityMedium,
	},
	"database": {
		title:      "Add Persistent Data Storage Layer",
		body:       "Introduce a database-backed storage layer with migrations and indexed queries to make application data durable and queryable.",
		difficulty: domain.DifficultyMedium,
		priority:   domain.PriorityMedium,
	},
	"testing": {
		title:      "Build Automated Testing Infrastructure",
		body:       "Add a comprehensive automated test suite with unit and integration coverage wired into continuous integration.",
		difficulty: domain.DifficultyEasy,
		priority:   domain.PriorityMedium,
	},
	"security": {
		title:      "Harden Application Security",
		body:       "Audit and harden input validation, secret handling, and dependency hygiene to reduce the application's attack surface.",
		difficulty: domain.DifficultyMedium,
		priority:   domain.PriorityHigh,
	},
}

// scoreFallbackCategory scores every category against the combined
// opinion text and returns the best one. Ties break by table order;
// "search" is returned when no keyword hits at all.
func scoreFallbackCategory(combined string) (string, int) {
	best, bestScore := "search", 0
	for _, cat := range fallbackCategories {
		score := 0
		for _, kw := range cat.keywords {
			if strings.Contains(combined, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = cat.name, score
		}
	}
	return best, bestScore
}

// FallbackSuggestion derives a canonical suggestion without any model
// call: keyword-score the opinions, pick the winning category's template,
// and embed the repository reference plus opinion excerpts into the body.
func FallbackSuggestion(opinions []domain.Opinion, repo domain.RepoRef) domain.Suggestion {
	var combined strings.Builder
	for _, op := range opinions {
		combined.WriteString(strings.ToLower(op.Text))
		combined.WriteByte(' ')
	}

	category, score := scoreFallbackCategory(combined.String())
	if score > 0 {
		logger.Debug("fallback selected category %q with score %d", category, score)
	} else {
		logger.Debug("fallback using default category %q", category)
	}

	tmpl := fallbackTemplates[category]

	var summary strings.Builder
	for _, op := range opinions {
		fmt.Fprintf(&summary, "- %s...\n", excerpt(op.Text, excerptLength))
	}

	body := fmt.Sprintf("%s\n\nBased on analysis of: %s\n\n"+
		"This suggestion was derived from analyzing multiple AI agent responses that highlighted the importance of %s functionality.",
		tmpl.body, repo.URL(), category)
	if summary.Len() > 0 {
		body += "\n\nAgent Analysis Summary:\n" + summary.String()
	}

	return ValidateAndFix(domain.Suggestion{
		Title:                  tmpl.title,
		Body:                   body,
		Difficulty:             tmpl.difficulty,
		Priority:               tmpl.priority,
		Labels:                 []string{"enhancement", "ai-generated", category},
		ImplementationEstimate: "2-4 weeks",
		TechnicalRequirements: []string{
			fmt.Sprintf("Research %s best practices", category),
			"Design system architecture",
			"Implement core functionality",
			"Add comprehensive testing",
		},
		AcceptanceCriteria: []string{
			fmt.Sprintf("%s is fully implemented", tmpl.title),
			"All functionality works as expected",
			"Tests pass with >90% coverage",
			"Documentation is complete",
		},
	})
}
