package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseta/internal/config"
	"courseta/internal/corpus"
	"courseta/internal/domain"
	"courseta/internal/question"
)

func item(title, content, url string, source domain.SourceType) domain.KnowledgeItem {
	return domain.KnowledgeItem{
		Title:     title,
		Content:   content,
		URL:       url,
		Source:    source,
		Keywords:  corpus.Keywords(title+" "+content, 3),
		WordCount: len(corpus.Tokens(content)),
	}
}

func analyze(t *testing.T, text string) *domain.AnalyzedQuestion {
	t.Helper()
	q := question.NewAnalyzer().Analyze(text, false)
	require.NotEqual(t, domain.CategoryInvalid, q.Category)
	return q
}

func newLexical() *Lexical {
	return NewLexical(config.Default().Scoring)
}

func TestScoreExcludesZeroScores(t *testing.T) {
	c := &domain.Corpus{Items: []domain.KnowledgeItem{
		item("Pottery notes", "Glaze firing temperatures vary widely between kiln types and clay bodies.", "https://example.com/1", domain.SourceForum),
	}}
	ranked := newLexical().Score(analyze(t, "zzz qqq unrelated"), c)
	assert.Empty(t, ranked)
}

func TestBonusRulesNeedTopicalOverlap(t *testing.T) {
	// Advice-style phrasing alone must not rank an item for an unrelated
	// question.
	c := &domain.Corpus{Items: []domain.KnowledgeItem{
		item("Advice", "You should always stretch and it is recommended that everyone hydrates properly.", "https://example.com/1", domain.SourceCurated),
	}}
	ranked := newLexical().Score(analyze(t, "zzz qqq unrelated"), c)
	assert.Empty(t, ranked)
}

func TestCuratedSourceOutranksForum(t *testing.T) {
	q := analyze(t, "Should I use gpt-4o-mini or gpt-3.5-turbo?")
	curated := item(
		"Project LLM requirements",
		"You must use gpt-3.5-turbo-0125 for the graded project even if the proxy supports newer models.",
		"https://course.example/project", domain.SourceCurated,
	)
	forum := item(
		"Random chatter",
		"Someone mentioned gpt-4o-mini once while we were talking about submission deadlines.",
		"https://forum.example/t/1", domain.SourceForum,
	)
	// Forum item first so rank order must come from scores, not input order.
	c := &domain.Corpus{Items: []domain.KnowledgeItem{forum, curated}}

	ranked := newLexical().Score(q, c)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Project LLM requirements", ranked[0].Item.Title)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestTiesKeepCorpusOrder(t *testing.T) {
	content := "The exam schedule for the final exam will be announced on the course page."
	a := item("first", content, "https://example.com/a", domain.SourceForum)
	b := item("second", content, "https://example.com/b", domain.SourceForum)
	c := &domain.Corpus{Items: []domain.KnowledgeItem{a, b}}

	ranked := newLexical().Score(analyze(t, "When is the final exam?"), c)
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, "first", ranked[0].Item.Title)
	assert.Equal(t, "second", ranked[1].Item.Title)
}

func TestLongContentPenalty(t *testing.T) {
	q := analyze(t, "When is the final exam?")
	short := item("short", "The final exam schedule is published on the course calendar page every term.", "https://example.com/s", domain.SourceForum)

	long := short
	long.Title = "long"
	long.URL = "https://example.com/l"
	long.WordCount = 1000

	c := &domain.Corpus{Items: []domain.KnowledgeItem{long, short}}
	ranked := newLexical().Score(q, c)
	require.Len(t, ranked, 2)
	assert.Equal(t, "short", ranked[0].Item.Title, "identical text but >500 words ranks lower")
	assert.InDelta(t, ranked[1].Score, ranked[0].Score*0.8, 1e-9)
}

func TestScoreIsDeterministic(t *testing.T) {
	q := analyze(t, "How do I install podman on windows?")
	c := &domain.Corpus{Items: []domain.KnowledgeItem{
		item("Podman setup", "You should install podman from the official site and run podman machine init first.", "https://example.com/1", domain.SourceCurated),
		item("Windows tips", "Use podman on windows through WSL when docker desktop is not available to you.", "https://example.com/2", domain.SourceForum),
	}}

	first := newLexical().Score(q, c)
	for i := 0; i < 5; i++ {
		again := newLexical().Score(q, c)
		require.Equal(t, first, again)
	}
}

func TestPrepareIsNoOp(t *testing.T) {
	assert.NoError(t, newLexical().Prepare(&domain.Corpus{}))
	assert.Equal(t, "lexical", newLexical().Name())
}
