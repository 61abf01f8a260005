package corpus

import "strings"

// Keywords tokenizes text and keeps lowercase terms of at least minLen
// characters that are not stopwords.
func Keywords(text string, minLen int) map[string]struct{} {
	if minLen <= 0 {
		minLen = 3
	}
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if len(w) < minLen {
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// Tokens returns all lowercase word tokens without any filtering.
func Tokens(text string) []string {
	return wordRe.FindAllString(strings.ToLower(text), -1)
}

var stopwords = func() map[string]struct{} {
	words := []string{
		"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
		"from", "up", "about", "into", "through", "during", "before", "after", "above",
		"below", "out", "off", "down", "under", "again", "further", "then", "once",
		"here", "there", "when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "only", "own", "same", "so",
		"than", "too", "very", "can", "will", "just", "should", "now", "this", "that",
		"these", "those", "they", "them", "their", "what", "which", "who", "whom",
		"whose", "would", "could", "might", "may", "shall", "must", "ought", "need",
		"was", "were", "are", "been", "being", "has", "have", "had", "not", "you",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
