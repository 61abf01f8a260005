package question

import (
	"regexp"
	"strings"

	"courseta/internal/domain"
)

// buildCategoryRules returns the classification rules in priority order.
// The first rule with a matching pattern wins.
func buildCategoryRules() []categoryRule {
	return []categoryRule{
		{domain.CategoryModelAPI, compileAll(
			`gpt[-\s]*(3\.5|4o)[-\s]*(?:turbo|mini)?`,
			`(?:which|what)\s+(?:model|llm|ai)`,
			`(?:openai|chatgpt)\s*(?:api|model)?`,
			`(?:api\s+)?model\s+(?:selection|choice|recommendation)`,
			`(?:use|choose|select)\s+(?:gpt|model|llm)`,
			`(?:better|recommend|prefer)\s+(?:gpt|model)`,
			`llm\s+(?:model|choice|selection)`,
		)},
		{domain.CategoryContainers, compileAll(
			`podman`,
			`docker`,
			`container(?:s|ization)?`,
			`(?:windows|mac|linux).*(?:podman|docker)`,
			`(?:install|setup|run).*(?:podman|docker)`,
		)},
		{domain.CategoryAnalyticsBonus, compileAll(
			`ga4`,
			`google\s+analytics`,
			`dashboard`,
			`bonus\s+(?:marks?|points?|score)`,
			`(?:score|earn|get)\s+bonus`,
			`extra\s+(?:marks?|points?|credit)`,
		)},
		{domain.CategoryExamSchedule, compileAll(
			`exam\s+(?:date|time|when|schedule)`,
			`(?:when|what\s+time).*exam`,
			`exam\s+(?:schedule|timing|format)`,
			`(?:roe|final|mid-?term)\s+exam`,
			`(?:test|quiz|assessment)\s+(?:date|time|schedule)`,
		)},
		{domain.CategoryCourseInfo, compileAll(
			`(?:pre-?)?requisites?`,
			`course\s+(?:structure|outline|syllabus|content)`,
			`(?:modules?|topics?|subjects?)\s+covered`,
			`(?:assignments?|projects?|homework)`,
			`(?:grading|evaluation|marks?|score)`,
			`course\s+(?:difficulty|hard|tough|easy)`,
			`(?:credits?|weightage|percentage)`,
		)},
		{domain.CategoryToolsUsage, compileAll(
			`vscode|visual\s+studio`,
			`unicode|encoding|character`,
			`scrap(?:ing|e|er)`,
			`python\s+(?:tools|libraries|packages)`,
			`terminal|command\s+line|bash|shell`,
			`(?:text\s+)?editor|ide`,
			`git(?:hub)?|version\s+control`,
		)},
	}
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// conceptVariants maps each topical tag to the substrings that indicate it in
// normalized question text.
var conceptVariants = map[string][]string{
	"gpt-3.5-turbo": {"gpt-3.5", "3.5", "gpt3.5"},
	"gpt-4o-mini":   {"gpt-4o", "4o", "gpt4o"},
	"model":         {"model", "llm"},
	"api":           {"api", "openai"},
	"podman":        {"podman"},
	"docker":        {"docker"},
	"windows":       {"windows"},
	"container":     {"container"},
	"vscode":        {"vscode"},
	"unicode":       {"unicode"},
	"scraping":      {"scrap", "crawl", "extract"},
	"exam":          {"exam", "assessment"},
	"bonus":         {"bonus", "extra"},
	"ga4":           {"ga4"},
	"prerequisites": {"prerequisite", "prereq", "requirement"},
	"grading":       {"grade", "grading", "mark", "score"},
}

// conceptOrder keeps concept detection deterministic.
var conceptOrder = []string{
	"gpt-3.5-turbo", "gpt-4o-mini", "model", "api",
	"podman", "docker", "windows", "container",
	"vscode", "unicode", "scraping",
	"exam", "bonus", "ga4", "prerequisites", "grading",
}

func detectConcepts(normalized string) map[string]struct{} {
	concepts := make(map[string]struct{})
	for _, concept := range conceptOrder {
		for _, variant := range conceptVariants[concept] {
			if strings.Contains(normalized, variant) {
				concepts[concept] = struct{}{}
				break
			}
		}
	}
	return concepts
}

// categoryBoostTerms expand the search-term set once a category is known.
var categoryBoostTerms = map[domain.Category][]string{
	domain.CategoryModelAPI:       {"openai", "api", "model", "gpt-3.5-turbo-0125", "gpt-4o-mini", "llm"},
	domain.CategoryContainers:     {"docker", "podman", "container", "windows", "install", "setup"},
	domain.CategoryAnalyticsBonus: {"ga4", "dashboard", "bonus", "marks", "scoring", "extra", "points"},
	domain.CategoryExamSchedule:   {"exam", "date", "schedule", "roe", "final", "timing", "format"},
	domain.CategoryCourseInfo:     {"course", "prerequisite", "structure", "module", "syllabus", "content"},
	domain.CategoryToolsUsage:     {"tools", "development", "editor", "programming", "setup"},
}

// baseTerms are always present in a non-empty question's search set.
var baseTerms = []string{"course", "tools", "data", "science"}
