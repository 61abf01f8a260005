package corpus

import (
	"strings"

	"go.uber.org/zap"

	"courseta/internal/config"
	"courseta/internal/domain"
)

// Loader turns raw record sources into an immutable corpus snapshot.
type Loader struct {
	cfg config.CorpusConfig
	log *zap.Logger
}

func NewLoader(cfg config.CorpusConfig, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{cfg: cfg, log: log}
}

// Build normalizes and filters every record of every source. Records that fail
// a filter are dropped silently; a source with no usable records contributes
// zero items and the corpus is still built.
func (l *Loader) Build(sources []domain.RecordSource) *domain.Corpus {
	var items []domain.KnowledgeItem
	for _, src := range sources {
		kept := 0
		for _, rec := range src.Records {
			item, ok := l.normalize(rec, src.Type)
			if !ok {
				continue
			}
			items = append(items, item)
			kept++
		}
		l.log.Info("corpus source loaded",
			zap.String("source", src.Name),
			zap.String("type", string(src.Type)),
			zap.Int("records", len(src.Records)),
			zap.Int("kept", kept),
		)
		if kept == 0 {
			l.log.Warn("corpus source contributed no items", zap.String("source", src.Name))
		}
	}
	return &domain.Corpus{Items: items}
}

func (l *Loader) normalize(rec domain.RawRecord, source domain.SourceType) (domain.KnowledgeItem, bool) {
	raw := strings.TrimSpace(rec.Content)
	if len(raw) < l.cfg.MinRawLen {
		return domain.KnowledgeItem{}, false
	}
	if noiseRatio(raw) > l.cfg.NoiseMatchRatio {
		return domain.KnowledgeItem{}, false
	}
	if dominantTokenRatio(raw) > l.cfg.RepetitionRatio {
		return domain.KnowledgeItem{}, false
	}
	cleaned := cleanText(raw)
	if len(cleaned) < l.cfg.MinContentLen {
		return domain.KnowledgeItem{}, false
	}
	title := strings.TrimSpace(rec.Title)
	return domain.KnowledgeItem{
		Title:     title,
		Content:   cleaned,
		URL:       rec.URL,
		Source:    source,
		Keywords:  Keywords(title+" "+cleaned, l.cfg.MinKeywordLen),
		WordCount: len(strings.Fields(cleaned)),
	}, true
}
