package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseta/internal/domain"
)

func TestAnalyzeEmptyQuestionIsInvalid(t *testing.T) {
	a := NewAnalyzer()
	for _, input := range []string{"", "   ", "\n\t"} {
		q := a.Analyze(input, false)
		assert.Equal(t, domain.CategoryInvalid, q.Category)
		assert.Empty(t, q.Concepts)
		assert.Empty(t, q.SearchTerms)
	}
}

func TestAnalyzeRecordsImageFlag(t *testing.T) {
	a := NewAnalyzer()
	assert.True(t, a.Analyze("what model should I use?", true).HasImage)
	assert.False(t, a.Analyze("what model should I use?", false).HasImage)
}

func TestNormalizeCanonicalizesVariants(t *testing.T) {
	cases := map[string]string{
		"Should I use GPT 3.5 Turbo?":  "should i use gpt-3.5-turbo?",
		"gpt-4o mini or gpt 4o mini":   "gpt-4o-mini or gpt-4o-mini",
		"Does VS Code work?":           "does vscode work?",
		"the Open AI   key":            "the openai key",
		"weird *** punctuation here!!": "weird punctuation here",
	}
	for input, want := range cases {
		assert.Equal(t, want, Normalize(input), "input %q", input)
	}
}

func TestCategorize(t *testing.T) {
	a := NewAnalyzer()
	cases := map[string]domain.Category{
		"Should I use gpt-4o-mini or gpt-3.5-turbo?": domain.CategoryModelAPI,
		"How do I install podman on windows?":        domain.CategoryContainers,
		"How do I earn the GA4 bonus marks?":         domain.CategoryAnalyticsBonus,
		"When is the final exam scheduled?":          domain.CategoryExamSchedule,
		"What are the prerequisites for the course?": domain.CategoryCourseInfo,
		"My terminal shows broken unicode output":    domain.CategoryToolsUsage,
		"Tell me something nice":                     domain.CategoryGeneral,
	}
	for input, want := range cases {
		assert.Equal(t, want, a.Analyze(input, false).Category, "input %q", input)
	}
}

func TestCategorizationIsPureFunctionOfNormalizedText(t *testing.T) {
	a := NewAnalyzer()
	q1 := a.Analyze("Should I use GPT 3.5 Turbo?", false)
	q2 := a.Analyze("  should i use gpt-3.5-turbo?  ", true)
	require.Equal(t, q1.Normalized, q2.Normalized)
	assert.Equal(t, q1.Category, q2.Category)
	assert.Equal(t, q1.Concepts, q2.Concepts)
	assert.Equal(t, q1.SearchTerms, q2.SearchTerms)
}

func TestConceptDetection(t *testing.T) {
	a := NewAnalyzer()
	q := a.Analyze("Should I use gpt-4o-mini or gpt-3.5-turbo for the project?", false)
	assert.Contains(t, q.Concepts, "gpt-3.5-turbo")
	assert.Contains(t, q.Concepts, "gpt-4o-mini")
	assert.NotContains(t, q.Concepts, "podman")

	q = a.Analyze("podman keeps failing inside my windows container", false)
	assert.Contains(t, q.Concepts, "podman")
	assert.Contains(t, q.Concepts, "windows")
	assert.Contains(t, q.Concepts, "container")
}

func TestSearchTermsUnionExpansions(t *testing.T) {
	a := NewAnalyzer()
	q := a.Analyze("Should I use gpt-4o-mini?", false)

	// tokens from the normalized text
	assert.Contains(t, q.SearchTerms, "use")
	// category boost terms
	assert.Contains(t, q.SearchTerms, "openai")
	assert.Contains(t, q.SearchTerms, "gpt-3.5-turbo-0125")
	// detected concepts
	assert.Contains(t, q.SearchTerms, "gpt-4o-mini")
	// always-on base terms
	assert.Contains(t, q.SearchTerms, "course")
}
