package domain

import "strings"

// Difficulty is the implementation difficulty of a suggestion.
type Difficulty string

// Difficulty values.
const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the enumerated difficulties.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// CoerceDifficulty maps an arbitrary string onto the closed difficulty set.
// Anything outside the set becomes Medium.
func CoerceDifficulty(s string) Difficulty {
	d := Difficulty(s)
	if !d.Valid() {
		return DifficultyMedium
	}
	return d
}

// Priority is the urgency of a suggestion.
type Priority string

// Priority values.
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// CoercePriority maps an arbitrary string onto the closed priority set.
// Anything outside the set becomes Medium.
func CoercePriority(s string) Priority {
	p := Priority(s)
	if !p.Valid() {
		return PriorityMedium
	}
	return p
}

// MaxTitleLength is the longest title accepted on a suggestion.
const MaxTitleLength = 80

// Suggestion is the canonical, fully-defaulted improvement record that the
// whole pipeline converges on. After passing through the normalizer every
// field is populated: difficulty and priority are members of their closed
// sets, and the three list fields are non-empty.
type Suggestion struct {
	Title                  string     `json:"title"`
	Body                   string     `json:"body"`
	Difficulty             Difficulty `json:"difficulty"`
	Priority               Priority   `json:"priority"`
	Labels                 []string   `json:"labels"`
	ImplementationEstimate string     `json:"implementation_estimate"`
	TechnicalRequirements  []string   `json:"technical_requirements"`
	AcceptanceCriteria     []string   `json:"acceptance_criteria"`
}

// TruncateTitle cleans leading non-word characters, keeps only the first
// sentence, and caps the result at MaxTitleLength runes.
func TruncateTitle(title string) string {
	title = strings.TrimSpace(title)
	title = strings.TrimLeft(title, "#*-_>`\"' \t")
	if i := strings.IndexByte(title, '.'); i > 0 {
		title = title[:i]
	}
	runes := []rune(title)
	if len(runes) > MaxTitleLength {
		title = string(runes[:MaxTitleLength-3]) + "..."
	}
	return title
}
