package corpus

import (
	"regexp"
	"strings"
)

// noisePatterns match boilerplate that scraped pages and forum exports drag
// along: CI chrome, clipboard widgets, code blocks, markdown dividers.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)git\s+(?:push|commit|clone)`),
	regexp.MustCompile(`(?i)github-actions?`),
	regexp.MustCompile(`(?i)copy\s+to\s+clipboard`),
	regexp.MustCompile(`(?i)error\s+copied`),
	regexp.MustCompile(`(?i)exit\s+\d+`),
	regexp.MustCompile(`(?i)super-linter`),
	regexp.MustCompile(`(?i)rawcontent`),
	regexp.MustCompile(`(?i)statuscode`),
	regexp.MustCompile("(?i)```[\\s\\S]*?```"),
	regexp.MustCompile(`---+`),
	regexp.MustCompile(`(?i)\[skip\s+ci\]`),
	regexp.MustCompile(`(?i)release\s+drafter`),
}

var (
	urlRe        = regexp.MustCompile(`https?://\S+`)
	emailRe      = regexp.MustCompile(`\S+@\S+\.\S+`)
	punctRe      = regexp.MustCompile(`[^\w\s.,!?\-()]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	wordRe       = regexp.MustCompile(`\b\w+\b`)
)

// MatchesNoise reports whether a single piece of text trips any noise pattern.
// Used both at load time and again on answer fragments.
func MatchesNoise(text string) bool {
	for _, re := range noisePatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// noiseRatio returns the fraction of noise patterns the text matches.
func noiseRatio(text string) float64 {
	matched := 0
	for _, re := range noisePatterns {
		if re.MatchString(text) {
			matched++
		}
	}
	return float64(matched) / float64(len(noisePatterns))
}

// dominantTokenRatio returns the frequency share of the most common token.
// Degenerate scraped pages tend to repeat one token over and over.
func dominantTokenRatio(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}
	freq := make(map[string]int, len(words))
	maxFreq := 0
	for _, w := range words {
		freq[w]++
		if freq[w] > maxFreq {
			maxFreq = freq[w]
		}
	}
	return float64(maxFreq) / float64(len(words))
}

// cleanText strips noise patterns, URLs, addresses and stray punctuation,
// then collapses whitespace.
func cleanText(text string) string {
	for _, re := range noisePatterns {
		text = re.ReplaceAllString(text, " ")
	}
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = punctRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
