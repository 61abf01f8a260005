package domain

import "time"

// SourceType distinguishes curated course material from forum discussion.
type SourceType string

const (
	SourceCurated SourceType = "curated"
	SourceForum   SourceType = "forum"
)

// RawRecord is one record as supplied by an external collaborator, before any
// cleaning or filtering.
type RawRecord struct {
	Title     string
	Content   string
	URL       string
	Author    string
	CreatedAt time.Time
}

// RecordSource is a named batch of raw records sharing one source type.
type RecordSource struct {
	Name    string
	Type    SourceType
	Records []RawRecord
}

// KnowledgeItem is a single normalized, retrievable unit of text. Items are
// created once at load time and never mutated afterwards.
type KnowledgeItem struct {
	Title     string
	Content   string
	URL       string
	Source    SourceType
	Keywords  map[string]struct{}
	WordCount int
}

// Corpus is an ordered, immutable collection of knowledge items. Order is
// preserved from load so that score ties resolve deterministically.
type Corpus struct {
	Items []KnowledgeItem
}

// Category is a coarse topic bucket assigned to a question.
type Category string

const (
	CategoryModelAPI       Category = "model_api"
	CategoryContainers     Category = "containers"
	CategoryAnalyticsBonus Category = "analytics_bonus"
	CategoryExamSchedule   Category = "exam_schedule"
	CategoryCourseInfo     Category = "course_info"
	CategoryToolsUsage     Category = "tools_usage"
	CategoryGeneral        Category = "general"
	CategoryInvalid        Category = "invalid"
)

// AnalyzedQuestion is the per-request view of a question after normalization,
// classification and search-term expansion. It is never persisted.
type AnalyzedQuestion struct {
	Original    string
	Normalized  string
	Category    Category
	Concepts    map[string]struct{}
	SearchTerms map[string]struct{}
	HasImage    bool
}

// ScoredMatch pairs a corpus item with its relevance score for one question.
// Scores rank items within a single call only; they are not comparable across
// calls or corpus versions.
type ScoredMatch struct {
	Item  *KnowledgeItem
	Score float64
}

// Link is one supporting reference in a response, unique by URL.
type Link struct {
	URL  string
	Text string
}

// Response is the engine's complete output for one question.
type Response struct {
	Answer string
	Links  []Link
}
