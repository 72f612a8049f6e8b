// Package category buckets prompt templates into the fixed label set the
// feed engine diversifies over. Classification is keyword-based and pure;
// anything without a keyword match falls into the general bucket.
package category

import (
	"strings"
)

// fixed label set
const (
	Business   = "business"
	Technical  = "technical"
	Creative   = "creative"
	Analytical = "analytical"
	General    = "general"
)

// keyword definitions per label, matched in declaration order so the
// first hit wins (source of truth)
var keywordDefs = []struct {
	label    string
	keywords []string
}{
	{Business, []string{
		"startup", "business", "market", "revenue", "pitch",
	}},
	{Technical, []string{
		"code", "programming", "debug", "refactor", "api",
	}},
	{Creative, []string{
		"write", "story", "poem", "character", "imagine",
	}},
	{Analytical, []string{
		"analyze", "data", "compare", "evaluate", "metrics",
	}},
}

// Keyword is the default Categorizer implementation.
type Keyword struct{}

func NewKeyword() *Keyword {
	return &Keyword{}
}

// Categorize maps a template to its label; unmatched input defaults to
// general
func (k *Keyword) Categorize(template string) string {
	lowered := strings.ToLower(template)

	for _, def := range keywordDefs {
		for _, kw := range def.keywords {
			if strings.Contains(lowered, kw) {
				return def.label
			}
		}
	}

	return General
}

// Labels returns the full label set, general last.
func Labels() []string {
	return []string{Business, Technical, Creative, Analytical, General}
}
