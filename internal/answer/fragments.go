package answer

import (
	"regexp"
	"strings"

	"courseta/internal/config"
	"courseta/internal/corpus"
)

var sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// splitFragments breaks cleaned content into sentence-like fragments at
// terminal punctuation and drops anything too short, too long, too thin on
// words, or still matching a noise pattern.
func splitFragments(content string, cfg config.AnswerConfig) []string {
	raw := sentenceRe.FindAllString(content, -1)
	if len(raw) == 0 {
		trimmed := strings.TrimSpace(content)
		if trimmed == "" {
			return nil
		}
		raw = []string{trimmed}
	}
	out := make([]string, 0, len(raw))
	for _, frag := range raw {
		frag = strings.TrimSpace(frag)
		if len(frag) < cfg.MinFragmentLen || len(frag) > cfg.MaxFragmentLen {
			continue
		}
		if len(corpus.Tokens(frag)) < cfg.MinFragmentWords {
			continue
		}
		if corpus.MatchesNoise(frag) {
			continue
		}
		out = append(out, frag)
	}
	return out
}

// jaccard computes token-set similarity between two fragments.
func jaccard(a, b string) float64 {
	sa := tokenSet(a)
	sb := tokenSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := 0
	for t := range sa {
		if _, ok := sb[t]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	tokens := corpus.Tokens(s)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}
