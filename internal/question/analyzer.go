package question

import (
	"regexp"
	"strings"

	"courseta/internal/corpus"
	"courseta/internal/domain"
)

// Analyzer normalizes a question, assigns it a category and expands it into a
// search-term set. Analysis is a pure function of the question text, so two
// questions normalizing to the same text always analyze identically.
type Analyzer struct {
	rules []categoryRule
}

type categoryRule struct {
	category domain.Category
	patterns []*regexp.Regexp
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{rules: buildCategoryRules()}
}

func (a *Analyzer) Analyze(question string, hasImage bool) *domain.AnalyzedQuestion {
	original := strings.TrimSpace(question)
	if original == "" {
		return &domain.AnalyzedQuestion{
			Category:    domain.CategoryInvalid,
			Concepts:    map[string]struct{}{},
			SearchTerms: map[string]struct{}{},
			HasImage:    hasImage,
		}
	}

	normalized := Normalize(original)
	category := a.categorize(normalized)
	concepts := detectConcepts(normalized)

	terms := make(map[string]struct{})
	for _, tok := range corpus.Tokens(normalized) {
		terms[tok] = struct{}{}
	}
	for _, t := range categoryBoostTerms[category] {
		terms[t] = struct{}{}
	}
	for c := range concepts {
		terms[c] = struct{}{}
	}
	for _, t := range baseTerms {
		terms[t] = struct{}{}
	}

	return &domain.AnalyzedQuestion{
		Original:    original,
		Normalized:  normalized,
		Category:    category,
		Concepts:    concepts,
		SearchTerms: terms,
		HasImage:    hasImage,
	}
}

func (a *Analyzer) categorize(normalized string) domain.Category {
	for _, rule := range a.rules {
		for _, re := range rule.patterns {
			if re.MatchString(normalized) {
				return rule.category
			}
		}
	}
	return domain.CategoryGeneral
}

var (
	wsRe       = regexp.MustCompile(`\s+`)
	gpt35Re    = regexp.MustCompile(`gpt[-\s]*3\.5[-\s]*turbo`)
	gpt4oRe    = regexp.MustCompile(`gpt[-\s]*4o[-\s]*mini`)
	vscodeRe   = regexp.MustCompile(`vs[-\s]*code`)
	openaiRe   = regexp.MustCompile(`open[-\s]*ai`)
	nonTokenRe = regexp.MustCompile(`[^\w\s\-.?]`)
)

// Normalize lowercases, canonicalizes known spelling variants of domain terms
// and collapses whitespace.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = wsRe.ReplaceAllString(text, " ")
	text = gpt35Re.ReplaceAllString(text, "gpt-3.5-turbo")
	text = gpt4oRe.ReplaceAllString(text, "gpt-4o-mini")
	text = vscodeRe.ReplaceAllString(text, "vscode")
	text = openaiRe.ReplaceAllString(text, "openai")
	text = nonTokenRe.ReplaceAllString(text, " ")
	text = wsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
