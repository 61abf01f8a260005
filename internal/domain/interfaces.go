package domain

// Analyzer turns raw question text into an AnalyzedQuestion.
type Analyzer interface {
	Analyze(question string, hasImage bool) *AnalyzedQuestion
}

// Scorer ranks corpus items against an analyzed question.
// Implementations may require a preparation phase over the corpus.
type Scorer interface {
	Name() string
	Prepare(corpus *Corpus) error
	Score(q *AnalyzedQuestion, corpus *Corpus) []ScoredMatch
}

// Synthesizer extracts a short grounded answer from ranked matches. The
// boolean reports whether the answer was synthesized from corpus content;
// fallback messages return false.
type Synthesizer interface {
	Synthesize(q *AnalyzedQuestion, ranked []ScoredMatch) (string, bool)
}

// LinkSelector picks the supporting references for a response.
type LinkSelector interface {
	Select(ranked []ScoredMatch) []Link
}

// Engine defines the single operation exposed by the application core.
type Engine interface {
	AnswerQuestion(question string, hasImage bool) Response
	Reload(sources []RecordSource) error
}
