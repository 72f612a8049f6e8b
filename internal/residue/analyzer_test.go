package residue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDominantHook(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("Discover the hidden secret behind great prompts")
	assert.Equal(t, "curiosity_gap", got.Pattern)
	assert.Positive(t, got.Hooks["curiosity_gap"])
	assert.Positive(t, got.HookScore)
}

func TestAnalyzeNoHooks(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("describe the weather in zurich")
	assert.Empty(t, got.Pattern)
	assert.Empty(t, got.Hooks)
	assert.Zero(t, got.HookScore)
}

func TestAnalyzeEmptyTemplate(t *testing.T) {
	a := NewAnalyzer()

	got := a.Analyze("")
	assert.Empty(t, got.Pattern)
	assert.Zero(t, got.HookScore)
}

func TestAnalyzeStructuralSignatures(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"triadic rhythm", "make it fast, cheap, and good", "triadic_rhythm"},
		{"question cascade", "What if? Why not? Who decides?", "question_cascade"},
		{"recursive reference", "improve this prompt before answering", "recursive_reference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.template)
			assert.Contains(t, got.Structures, tt.want)
		})
	}
}

func TestAnalyzeLengthNormalization(t *testing.T) {
	a := NewAnalyzer()

	short := a.Analyze("discover everything")
	long := a.Analyze("discover " + strings.Repeat("filler ", 200))

	require.Contains(t, short.Hooks, "curiosity_gap")
	require.Contains(t, long.Hooks, "curiosity_gap")
	assert.Greater(t, short.Hooks["curiosity_gap"], long.Hooks["curiosity_gap"],
		"padding must dilute hook strength")
}

func TestAnalyzeHookScoreBounded(t *testing.T) {
	a := NewAnalyzer()

	// every trigger family plus all three structures
	loaded := "You are about to discover the hidden secret everyone calls viral. " +
		"Simply become fast, strong, and rare? Limited? Exclusive? " +
		"This prompt transforms naturally."

	got := a.Analyze(loaded)
	assert.LessOrEqual(t, got.HookScore, 1.0)
	assert.GreaterOrEqual(t, got.HookScore, 0.0)
	assert.NotEmpty(t, got.Pattern)
}
