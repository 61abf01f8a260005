package scoring

import (
	"sort"
	"strings"

	"courseta/internal/config"
	"courseta/internal/domain"
)

// Lexical ranks items with a weighted sum of independent rules: token
// overlap, concept hits, category terms, source preference, title hits,
// actionable phrasing and a long-content penalty. All weights come from
// configuration. Identical inputs always produce identical output; ties keep
// corpus insertion order.
type Lexical struct {
	cfg config.ScoringConfig
}

func NewLexical(cfg config.ScoringConfig) *Lexical {
	return &Lexical{cfg: cfg}
}

func (l *Lexical) Name() string { return "lexical" }

// Prepare is a no-op; the lexical scorer needs no corpus-wide state.
func (l *Lexical) Prepare(*domain.Corpus) error { return nil }

func (l *Lexical) Score(q *domain.AnalyzedQuestion, corpus *domain.Corpus) []domain.ScoredMatch {
	matches := make([]domain.ScoredMatch, 0, len(corpus.Items))
	for i := range corpus.Items {
		item := &corpus.Items[i]
		if score := l.scoreItem(q, item); score > 0 {
			matches = append(matches, domain.ScoredMatch{Item: item, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches
}

func (l *Lexical) scoreItem(q *domain.AnalyzedQuestion, item *domain.KnowledgeItem) float64 {
	content := strings.ToLower(item.Content)
	title := strings.ToLower(item.Title)

	score := 0.0

	// Rule: shared tokens between the expanded search set and item keywords.
	for term := range q.SearchTerms {
		if _, ok := item.Keywords[term]; ok {
			score += l.cfg.TokenWeight
		}
	}

	// Rule: detected concepts appearing verbatim in the item text.
	for concept := range q.Concepts {
		if strings.Contains(content, concept) || strings.Contains(title, concept) {
			score += l.cfg.ConceptWeight
		}
	}

	// Rule: category-specific terms, weighted per category.
	terms, weight := CategoryTerms(q.Category)
	for _, term := range terms {
		if strings.Contains(content, term) || strings.Contains(title, term) {
			score += weight
		}
	}

	// The remaining rules refine relevance; they must not create it for an
	// item with no topical overlap at all.
	if score == 0 {
		return 0
	}

	// Rule: curated material outranks forum chatter.
	if item.Source == domain.SourceCurated {
		score *= l.cfg.CuratedMultiplier
	}

	// Rule: any search term in the title.
	for term := range q.SearchTerms {
		if strings.Contains(title, term) {
			score += l.cfg.TitleWeight
			break
		}
	}

	// Rule: actionable phrasing, capped so chatty items cannot run away.
	actionable := float64(CountActionable(content)) * l.cfg.ActionableWeight
	if actionable > l.cfg.ActionableCap {
		actionable = l.cfg.ActionableCap
	}
	score += actionable

	// Rule: very long items are usually less on-point.
	if item.WordCount > l.cfg.LongWordCount {
		score *= l.cfg.LongPenalty
	}

	return score
}
