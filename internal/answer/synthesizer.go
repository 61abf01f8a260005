package answer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"courseta/internal/config"
	"courseta/internal/domain"
	"courseta/internal/scoring"
)

// Synthesizer builds a short grounded answer from the top-ranked item's
// content by selecting its best sentence-level fragments. When the ranking is
// empty, the top score misses the acceptance threshold, or no fragment scores
// above zero, it returns a category-specific canned fallback instead.
type Synthesizer struct {
	cfg config.AnswerConfig
}

func NewSynthesizer(cfg config.AnswerConfig) *Synthesizer {
	return &Synthesizer{cfg: cfg}
}

// Confident reports whether the ranked list clears the acceptance threshold.
// The link selector applies the same policy, so a fallback answer never ships
// with a full link set.
func (s *Synthesizer) Confident(ranked []domain.ScoredMatch) bool {
	return len(ranked) > 0 && ranked[0].Score >= s.cfg.AcceptanceThreshold
}

// Synthesize returns the answer text and whether it is grounded in corpus
// content. Fallback messages report false so the caller can withhold links.
func (s *Synthesizer) Synthesize(q *domain.AnalyzedQuestion, ranked []domain.ScoredMatch) (string, bool) {
	if !s.Confident(ranked) {
		return Fallback(q.Category), false
	}
	// Fall through to the next-ranked item when the top one yields nothing.
	for _, match := range ranked {
		if text := s.fromContent(q, match.Item.Content); text != "" {
			return text, true
		}
	}
	return Fallback(q.Category), false
}

func (s *Synthesizer) fromContent(q *domain.AnalyzedQuestion, content string) string {
	fragments := splitFragments(content, s.cfg)
	if len(fragments) == 0 {
		return ""
	}

	type scored struct {
		idx   int
		text  string
		score float64
	}
	candidates := make([]scored, 0, len(fragments))
	for i, frag := range fragments {
		if sc := s.scoreFragment(q, frag); sc > 0 {
			candidates = append(candidates, scored{idx: i, text: frag, score: sc})
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	var selected []string
	for _, c := range candidates {
		if len(selected) >= s.cfg.MaxFragments {
			break
		}
		dup := false
		for _, prev := range selected {
			if jaccard(c.text, prev) > s.cfg.DuplicateJaccard {
				dup = true
				break
			}
		}
		if !dup {
			selected = append(selected, c.text)
		}
	}
	return Finalize(strings.Join(selected, " "))
}

var (
	leadingConjunctionRe = regexp.MustCompile(`^(?:and|or|but|so|then|also|however|therefore)\b`)
	directAnswerPhrases  = []string{"you should", "you must", "you can", "it is", "use the"}
)

// scoreFragment is a weighted sum of the same named rules the relevance
// scorer uses, applied at sentence granularity.
func (s *Synthesizer) scoreFragment(q *domain.AnalyzedQuestion, frag string) float64 {
	lower := strings.ToLower(frag)
	score := 0.0

	for concept := range q.Concepts {
		if strings.Contains(lower, concept) {
			score += 5
		}
	}
	score += float64(scoring.CountActionable(lower)) * 3
	terms, _ := scoring.CategoryTerms(q.Category)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			score += 4
		}
	}
	if leadingConjunctionRe.MatchString(lower) {
		score -= 2
	}
	for _, phrase := range directAnswerPhrases {
		if strings.Contains(lower, phrase) {
			score += 2
		}
	}
	return score
}

var finalWhitespaceRe = regexp.MustCompile(`\s+`)

// Finalize enforces the answer invariants: collapsed whitespace, an uppercase
// first letter and terminal punctuation.
func Finalize(text string) string {
	text = strings.TrimSpace(finalWhitespaceRe.ReplaceAllString(text, " "))
	if text == "" {
		return ""
	}
	runes := []rune(text)
	runes[0] = unicode.ToUpper(runes[0])
	text = string(runes)
	if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		text += "."
	}
	return text
}
