package scoring

import (
	"regexp"

	"courseta/internal/domain"
)

// categoryTerms lists, per category, the content terms that indicate an item
// actually answers that kind of question, with the per-term boost weight.
type categoryBoost struct {
	Terms  []string
	Weight float64
}

var categoryTerms = map[domain.Category]categoryBoost{
	domain.CategoryModelAPI:       {Terms: []string{"gpt-3.5-turbo-0125", "gpt-4o-mini", "openai", "api", "model"}, Weight: 10},
	domain.CategoryContainers:     {Terms: []string{"podman", "docker", "container", "windows"}, Weight: 8},
	domain.CategoryAnalyticsBonus: {Terms: []string{"ga4", "dashboard", "bonus", "marks"}, Weight: 7},
	domain.CategoryExamSchedule:   {Terms: []string{"exam", "schedule", "date", "roe", "final"}, Weight: 6},
	domain.CategoryCourseInfo:     {Terms: []string{"prerequisite", "course", "structure", "module"}, Weight: 5},
	domain.CategoryToolsUsage:     {Terms: []string{"vscode", "tools", "development"}, Weight: 4},
}

// ActionablePatterns match imperative, advice-like phrasing. Text containing
// them tends to answer a question rather than merely mention its terms.
var ActionablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`you\s+(?:must|should|need\s+to|can)`),
	regexp.MustCompile(`it\s+is\s+(?:recommended|important|required)`),
	regexp.MustCompile(`use\s+[\w\-.]+\s+(?:for|to|when)`),
	regexp.MustCompile(`the\s+(?:recommended|preferred|best)\s+\w+\s+is`),
	regexp.MustCompile(`in\s+this\s+course`),
	regexp.MustCompile(`for\s+this\s+course`),
	regexp.MustCompile(`(?:students?|you)\s+(?:should|must|need)`),
}

// CountActionable returns how many actionable patterns the text matches.
func CountActionable(lowerText string) int {
	n := 0
	for _, re := range ActionablePatterns {
		if re.MatchString(lowerText) {
			n++
		}
	}
	return n
}

// CategoryTerms exposes the boost table for a category; the answer
// synthesizer reuses it for fragment scoring.
func CategoryTerms(cat domain.Category) ([]string, float64) {
	b, ok := categoryTerms[cat]
	if !ok {
		return nil, 0
	}
	return b.Terms, b.Weight
}
