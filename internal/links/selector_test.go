package links

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courseta/internal/config"
	"courseta/internal/domain"
)

func newSelector() *Selector {
	return NewSelector(config.Default().Links)
}

func ranked(items ...domain.KnowledgeItem) []domain.ScoredMatch {
	out := make([]domain.ScoredMatch, len(items))
	for i := range items {
		out[i] = domain.ScoredMatch{Item: &items[i], Score: float64(100 - i)}
	}
	return out
}

func TestSelectPreservesRankOrder(t *testing.T) {
	got := newSelector().Select(ranked(
		domain.KnowledgeItem{Title: "first", URL: "https://example.com/1"},
		domain.KnowledgeItem{Title: "second", URL: "https://example.com/2"},
	))
	require.Len(t, got, 2)
	assert.Equal(t, "https://example.com/1", got[0].URL)
	assert.Equal(t, "https://example.com/2", got[1].URL)
}

func TestSelectDeduplicatesByURL(t *testing.T) {
	got := newSelector().Select(ranked(
		domain.KnowledgeItem{Title: "thread reply", URL: "https://forum.example/t/42"},
		domain.KnowledgeItem{Title: "same thread", URL: "https://forum.example/t/42"},
		domain.KnowledgeItem{Title: "other", URL: "https://example.com/3"},
	))
	require.Len(t, got, 2)
	assert.Equal(t, "thread reply", got[0].Text, "first occurrence wins")
	urls := map[string]struct{}{}
	for _, l := range got {
		_, dup := urls[l.URL]
		assert.False(t, dup, "duplicate url %s", l.URL)
		urls[l.URL] = struct{}{}
	}
}

func TestSelectCapsAtThree(t *testing.T) {
	got := newSelector().Select(ranked(
		domain.KnowledgeItem{Title: "a", URL: "https://example.com/1"},
		domain.KnowledgeItem{Title: "b", URL: "https://example.com/2"},
		domain.KnowledgeItem{Title: "c", URL: "https://example.com/3"},
		domain.KnowledgeItem{Title: "d", URL: "https://example.com/4"},
	))
	assert.Len(t, got, 3)
}

func TestSelectSkipsItemsWithoutURL(t *testing.T) {
	got := newSelector().Select(ranked(
		domain.KnowledgeItem{Title: "no url"},
		domain.KnowledgeItem{Title: "has url", URL: "https://example.com/1"},
	))
	require.Len(t, got, 1)
	assert.Equal(t, "has url", got[0].Text)
}

func TestSelectTruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("t", 120)
	got := newSelector().Select(ranked(domain.KnowledgeItem{Title: long, URL: "https://example.com/1"}))
	require.Len(t, got, 1)
	assert.Len(t, got[0].Text, 80)
	assert.True(t, strings.HasSuffix(got[0].Text, "..."))
}

func TestSelectUsesPlaceholderWithoutTitle(t *testing.T) {
	got := newSelector().Select(ranked(domain.KnowledgeItem{URL: "https://example.com/1"}))
	require.Len(t, got, 1)
	assert.Equal(t, "Course material", got[0].Text)
}

func TestSelectEmptyRanking(t *testing.T) {
	assert.Empty(t, newSelector().Select(nil))
}
