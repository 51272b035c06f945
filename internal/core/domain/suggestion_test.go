package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyEasy, CoerceDifficulty("Easy"))
	assert.Equal(t, DifficultyHard, CoerceDifficulty("Hard"))
	assert.Equal(t, DifficultyMedium, CoerceDifficulty("easy"))
	assert.Equal(t, DifficultyMedium, CoerceDifficulty("impossible"))
	assert.Equal(t, DifficultyMedium, CoerceDifficulty(""))
}

func TestCoercePriority(t *testing.T) {
	assert.Equal(t, PriorityHigh, CoercePriority("High"))
	assert.Equal(t, PriorityLow, CoercePriority("Low"))
	assert.Equal(t, PriorityMedium, CoercePriority("urgent"))
	assert.Equal(t, PriorityMedium, CoercePriority(""))
}

func TestDifficultyValid(t *testing.T) {
	assert.True(t, DifficultyMedium.Valid())
	assert.False(t, Difficulty("Tough").Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("").Valid())
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Add offline support", "Add offline support"},
		{"markdown heading", "### Add offline support", "Add offline support"},
		{"bullet and quotes", `- "Add offline support"`, `Add offline support"`},
		{"first sentence only", "Add caching. Then profile the hot path.", "Add caching"},
		{"leading whitespace", "   Add caching  ", "Add caching"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateTitle(tt.title))
		})
	}
}

func TestTruncateTitleCapsLength(t *testing.T) {
	long := strings.Repeat("x", 120)
	got := TruncateTitle(long)
	assert.Equal(t, MaxTitleLength, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, strings.Repeat("x", MaxTitleLength-3), strings.TrimSuffix(got, "..."))
}
