package engine

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"courseta/internal/answer"
	"courseta/internal/config"
	"courseta/internal/corpus"
	"courseta/internal/domain"
	"courseta/internal/links"
	"courseta/internal/question"
	"courseta/internal/scoring"
)

// Engine is the content retrieval and answer synthesis core. Per-question
// work is a pure function over the current corpus snapshot, so any number of
// questions may be answered concurrently.
type Engine struct {
	cfg      *config.AppConfig
	log      *zap.Logger
	analyzer domain.Analyzer
	scorer   domain.Scorer
	synth    *answer.Synthesizer
	selector domain.LinkSelector
	loader   *corpus.Loader
	store    *corpus.Store
	cache    *gocache.Cache
}

// New wires the pipeline. The scorer implementation is chosen here, once.
func New(cfg *config.AppConfig, log *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		cfg:      cfg,
		log:      log,
		analyzer: question.NewAnalyzer(),
		scorer:   scoring.Select(cfg, log),
		synth:    answer.NewSynthesizer(cfg.Answer),
		selector: links.NewSelector(cfg.Links),
		loader:   corpus.NewLoader(cfg.Corpus, log),
		store:    corpus.NewStore(),
		cache: gocache.New(
			time.Duration(cfg.Cache.TTLSecs)*time.Second,
			time.Duration(cfg.Cache.CleanupSecs)*time.Second,
		),
	}
}

// Load builds the first corpus snapshot. Sources that contribute nothing are
// logged and skipped; the engine starts degraded rather than failing.
func (e *Engine) Load(sources []domain.RecordSource) error {
	return e.Reload(sources)
}

// Reload builds a replacement snapshot fully off to the side, then installs
// it with a single atomic swap. In-flight questions keep the snapshot they
// started with. A scorer preparation failure degrades ranking to the lexical
// rules but never blocks the swap.
func (e *Engine) Reload(sources []domain.RecordSource) error {
	snapshot := e.loader.Build(sources)
	var prepErr error
	if err := e.scorer.Prepare(snapshot); err != nil {
		prepErr = fmt.Errorf("prepare %s scorer: %w", e.scorer.Name(), err)
		e.log.Warn("scorer preparation failed, continuing degraded", zap.Error(err))
	}
	e.store.Replace(snapshot)
	e.cache.Flush()
	e.log.Info("corpus snapshot installed", zap.Int("items", len(snapshot.Items)))
	return prepErr
}

// AnswerQuestion answers one free-text question. It always returns a
// well-formed response: internal failures surface as the generic fallback,
// never as a panic or an error.
func (e *Engine) AnswerQuestion(questionText string, hasImage bool) (resp domain.Response) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("answer pipeline failure", zap.Any("cause", r))
			resp = domain.Response{Answer: answer.GenericFallback, Links: []domain.Link{}}
		}
	}()

	q := e.analyzer.Analyze(questionText, hasImage)
	if q.Category == domain.CategoryInvalid {
		return domain.Response{Answer: answer.InvalidQuestionMessage, Links: []domain.Link{}}
	}

	key := cacheKey(q)
	if cached, ok := e.cache.Get(key); ok {
		return cached.(domain.Response)
	}

	snapshot := e.store.Snapshot()
	ranked := e.scorer.Score(q, snapshot)

	ans, grounded := e.synth.Synthesize(q, ranked)
	resp = domain.Response{Answer: ans, Links: []domain.Link{}}
	if grounded {
		resp.Links = e.selector.Select(ranked)
	}

	e.log.Debug("question answered",
		zap.String("category", string(q.Category)),
		zap.Bool("has_image", q.HasImage),
		zap.Int("ranked", len(ranked)),
		zap.Int("links", len(resp.Links)),
	)
	e.cache.Set(key, resp, gocache.DefaultExpiration)
	return resp
}

// CorpusSize reports the number of items in the current snapshot.
func (e *Engine) CorpusSize() int {
	return len(e.store.Snapshot().Items)
}

// cacheKey is safe because responses are deterministic for one snapshot and
// the cache is flushed on reload.
func cacheKey(q *domain.AnalyzedQuestion) string {
	if q.HasImage {
		return "i|" + q.Normalized
	}
	return "q|" + q.Normalized
}
