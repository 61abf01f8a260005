package answer

import "courseta/internal/domain"

// InvalidQuestionMessage is returned verbatim for empty or whitespace-only
// questions.
const InvalidQuestionMessage = "Please provide a question."

// GenericFallback is the low-confidence response when no category-specific
// guidance applies.
const GenericFallback = "I couldn't find specific information about your question. Please try rephrasing or being more specific about what you'd like to know."

var categoryFallbacks = map[domain.Category]string{
	domain.CategoryModelAPI:       "Check the specific model requirements mentioned in the course materials or project instructions.",
	domain.CategoryContainers:     "Refer to the Docker/Podman section in the course materials for installation and setup instructions.",
	domain.CategoryExamSchedule:   "Check the course schedule and announcements for exam dates and times.",
	domain.CategoryAnalyticsBonus: "Look for bonus activity announcements on the course forum or in the course materials.",
	domain.CategoryCourseInfo:     "Refer to the course overview and syllabus for detailed information about course structure and requirements.",
}

// Fallback returns the canned answer for a category, generic when none exists.
func Fallback(cat domain.Category) string {
	if msg, ok := categoryFallbacks[cat]; ok {
		return msg
	}
	return GenericFallback
}
