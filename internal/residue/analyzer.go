// Package residue extracts the linguistic traces that make a template
// "sticky": semantic hooks, structural signatures and a combined hook
// score. The feed core consumes it only through the Analyze contract (a
// pattern label plus a score in [0,1]) and assumes nothing about the
// implementation.
package residue

import (
	"regexp"
	"strings"
)

// Analysis is the result of one template inspection.
type Analysis struct {
	// dominant semantic hook, empty when nothing matched
	Pattern string `json:"pattern"`

	// combined stickiness score in [0,1]
	HookScore float64 `json:"hook_score"`

	// per-hook match strengths
	Hooks map[string]float64 `json:"hooks,omitempty"`

	// structural signatures present in the template
	Structures []string `json:"structures,omitempty"`
}

// semantic trigger phrases per hook family
var semanticTriggers = map[string][]string{
	"curiosity_gap":   {"discover", "reveal", "hidden", "secret"},
	"identity_mirror": {"you are", "become", "transform", "embody"},
	"cognitive_ease":  {"simply", "just", "easily", "naturally"},
	"social_proof":    {"everyone", "trending", "viral", "popular"},
	"scarcity_driver": {"limited", "exclusive", "rare", "special"},
}

// structural signatures that enhance memorability
var structuralSignatures = map[string]*regexp.Regexp{
	"triadic_rhythm":      regexp.MustCompile(`(\w+)[,\s]+(\w+)[,\s]+and\s+(\w+)`),
	"question_cascade":    regexp.MustCompile(`(\?.*){2,}`),
	"recursive_reference": regexp.MustCompile(`(?i)(this|self|itself)\s+(prompt|template|pattern)`),
}

// Analyzer is the default keyword/regex implementation.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze inspects a template for hooks and structure. It is a pure
// function: no state, no clock.
func (a *Analyzer) Analyze(template string) Analysis {
	lowered := strings.ToLower(template)
	words := len(strings.Fields(template))

	analysis := Analysis{Hooks: make(map[string]float64)}

	var best string
	var bestScore float64

	for hook, triggers := range semanticTriggers {
		matches := 0.0

		for _, trigger := range triggers {
			if strings.Contains(lowered, trigger) {
				matches++
			}
		}

		if matches == 0 {
			continue
		}

		// normalize by template length so long templates do not win
		// on volume alone
		score := matches / (float64(words)/100.0 + 1.0)
		analysis.Hooks[hook] = score

		if score > bestScore {
			best, bestScore = hook, score
		}
	}

	for name, re := range structuralSignatures {
		if re.MatchString(template) {
			analysis.Structures = append(analysis.Structures, name)
		}
	}

	analysis.Pattern = best
	analysis.HookScore = hookScore(bestScore, len(analysis.Structures))

	return analysis
}

// folds the dominant hook strength and structural matches into [0,1]
func hookScore(semantic float64, structures int) float64 {
	score := 0.7*semantic + 0.1*float64(structures)

	if score > 1.0 {
		return 1.0
	}

	if score < 0 {
		return 0
	}

	return score
}
