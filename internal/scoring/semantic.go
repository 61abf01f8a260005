package scoring

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"courseta/internal/config"
	"courseta/internal/domain"
)

// Semantic layers an embeddings similarity bonus on top of the lexical rules.
// Item vectors are computed once per corpus snapshot in Prepare; Score only
// embeds the incoming question. If the question embedding fails, the lexical
// ranking is returned unchanged.
type Semantic struct {
	lexical *Lexical
	client  *openai.Client
	model   openai.EmbeddingModel
	weight  float64
	timeout time.Duration
	log     *zap.Logger

	index atomic.Pointer[semanticIndex]
}

type semanticIndex struct {
	corpus  *domain.Corpus
	vectors [][]float32
}

func NewSemantic(cfg config.SemanticConfig, scoring config.ScoringConfig, log *zap.Logger) (*Semantic, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
	}
	clientCfg := openai.DefaultConfig(key)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutSecs) * time.Second}
	if log == nil {
		log = zap.NewNop()
	}
	return &Semantic{
		lexical: NewLexical(scoring),
		client:  openai.NewClientWithConfig(clientCfg),
		model:   openai.EmbeddingModel(cfg.Model),
		weight:  scoring.SemanticWeight,
		timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		log:     log,
	}, nil
}

func (s *Semantic) Name() string { return "semantic" }

// Prepare embeds every corpus item. Runs at load and reload only, so the
// per-question path stays free of bulk network calls.
func (s *Semantic) Prepare(corpus *domain.Corpus) error {
	texts := make([]string, len(corpus.Items))
	for i, item := range corpus.Items {
		texts[i] = item.Title + "\n" + item.Content
	}
	vectors := make([][]float32, len(texts))
	if len(texts) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Input: texts,
			Model: s.model,
		})
		if err != nil {
			return fmt.Errorf("embed corpus: %w", err)
		}
		if len(resp.Data) != len(texts) {
			return fmt.Errorf("embed corpus: got %d vectors for %d items", len(resp.Data), len(texts))
		}
		for i, d := range resp.Data {
			vectors[i] = d.Embedding
		}
	}
	s.index.Store(&semanticIndex{corpus: corpus, vectors: vectors})
	s.log.Info("semantic index prepared", zap.Int("items", len(texts)))
	return nil
}

func (s *Semantic) Score(q *domain.AnalyzedQuestion, corpus *domain.Corpus) []domain.ScoredMatch {
	matches := s.lexical.Score(q, corpus)
	idx := s.index.Load()
	if idx == nil || idx.corpus != corpus {
		return matches
	}
	qvec, err := s.embedQuery(q.Normalized)
	if err != nil {
		s.log.Warn("question embedding failed, using lexical ranking", zap.Error(err))
		return matches
	}

	byItem := make(map[*domain.KnowledgeItem][]float32, len(idx.vectors))
	for i := range idx.corpus.Items {
		byItem[&idx.corpus.Items[i]] = idx.vectors[i]
	}
	for i := range matches {
		if vec, ok := byItem[matches[i].Item]; ok {
			if sim := cosine(qvec, vec); sim > 0 {
				matches[i].Score += sim * s.weight
			}
		}
	}
	// Re-rank with the blended scores; stable sort keeps corpus-order ties.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Score > matches[j-1].Score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
	return matches
}

func (s *Semantic) embedQuery(text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	resp, err := s.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: s.model,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) != 1 {
		return nil, fmt.Errorf("expected 1 embedding, got %d", len(resp.Data))
	}
	return resp.Data[0].Embedding, nil
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Select builds the scorer once at construction time: the semantic scorer
// when it can be constructed, the lexical baseline otherwise.
func Select(cfg *config.AppConfig, log *zap.Logger) domain.Scorer {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Semantic.Enabled {
		sem, err := NewSemantic(cfg.Semantic, cfg.Scoring, log)
		if err == nil {
			log.Info("scorer selected", zap.String("scorer", sem.Name()))
			return sem
		}
		log.Warn("semantic scorer unavailable, falling back to lexical", zap.Error(err))
	}
	lex := NewLexical(cfg.Scoring)
	log.Info("scorer selected", zap.String("scorer", lex.Name()))
	return lex
}
