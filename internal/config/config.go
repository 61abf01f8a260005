package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CorpusConfig holds the load-time filtering thresholds.
type CorpusConfig struct {
	MinRawLen       int     `yaml:"min_raw_len"`
	MinContentLen   int     `yaml:"min_content_len"`
	NoiseMatchRatio float64 `yaml:"noise_match_ratio"`
	RepetitionRatio float64 `yaml:"repetition_ratio"`
	MinKeywordLen   int     `yaml:"min_keyword_len"`
}

// ScoringConfig holds the relevance weights. The values are empirically chosen
// and only meaningful relative to each other.
type ScoringConfig struct {
	TokenWeight       float64 `yaml:"token_weight"`
	ConceptWeight     float64 `yaml:"concept_weight"`
	TitleWeight       float64 `yaml:"title_weight"`
	ActionableWeight  float64 `yaml:"actionable_weight"`
	ActionableCap     float64 `yaml:"actionable_cap"`
	CuratedMultiplier float64 `yaml:"curated_multiplier"`
	LongPenalty       float64 `yaml:"long_penalty"`
	LongWordCount     int     `yaml:"long_word_count"`
	SemanticWeight    float64 `yaml:"semantic_weight"`
}

// SemanticConfig configures the optional embeddings-backed scorer.
type SemanticConfig struct {
	Enabled     bool   `yaml:"enabled"`
	APIKeyEnv   string `yaml:"api_key_env"`
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// AnswerConfig holds synthesis thresholds and limits.
type AnswerConfig struct {
	AcceptanceThreshold float64 `yaml:"acceptance_threshold"`
	MinFragmentLen      int     `yaml:"min_fragment_len"`
	MaxFragmentLen      int     `yaml:"max_fragment_len"`
	MinFragmentWords    int     `yaml:"min_fragment_words"`
	MaxFragments        int     `yaml:"max_fragments"`
	DuplicateJaccard    float64 `yaml:"duplicate_jaccard"`
}

// LinksConfig holds link selection limits.
type LinksConfig struct {
	MaxLinks    int `yaml:"max_links"`
	MaxTitleLen int `yaml:"max_title_len"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	TTLSecs     int `yaml:"ttl_secs"`
	CleanupSecs int `yaml:"cleanup_secs"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Semantic SemanticConfig `yaml:"semantic"`
	Answer   AnswerConfig   `yaml:"answer"`
	Links    LinksConfig    `yaml:"links"`
	Cache    CacheConfig    `yaml:"cache"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the configuration used when no file is present.
func Default() *AppConfig {
	return &AppConfig{
		Corpus: CorpusConfig{
			MinRawLen:       20,
			MinContentLen:   50,
			NoiseMatchRatio: 0.2,
			RepetitionRatio: 0.3,
			MinKeywordLen:   3,
		},
		Scoring: ScoringConfig{
			TokenWeight:       2,
			ConceptWeight:     5,
			TitleWeight:       8,
			ActionableWeight:  2,
			ActionableCap:     10,
			CuratedMultiplier: 3,
			LongPenalty:       0.8,
			LongWordCount:     500,
			SemanticWeight:    10,
		},
		Semantic: SemanticConfig{
			Enabled:     false,
			APIKeyEnv:   "OPENAI_API_KEY",
			Model:       "text-embedding-3-small",
			TimeoutSecs: 30,
		},
		Answer: AnswerConfig{
			AcceptanceThreshold: 6,
			MinFragmentLen:      20,
			MaxFragmentLen:      350,
			MinFragmentWords:    5,
			MaxFragments:        2,
			DuplicateJaccard:    0.6,
		},
		Links: LinksConfig{
			MaxLinks:    3,
			MaxTitleLen: 80,
		},
		Cache: CacheConfig{
			TTLSecs:     300,
			CleanupSecs: 600,
		},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := Default()
	if cfg.Corpus.MinContentLen == 0 {
		cfg.Corpus.MinContentLen = def.Corpus.MinContentLen
	}
	if cfg.Corpus.MinKeywordLen == 0 {
		cfg.Corpus.MinKeywordLen = def.Corpus.MinKeywordLen
	}
	if cfg.Scoring.CuratedMultiplier == 0 {
		cfg.Scoring.CuratedMultiplier = def.Scoring.CuratedMultiplier
	}
	if cfg.Scoring.LongWordCount == 0 {
		cfg.Scoring.LongWordCount = def.Scoring.LongWordCount
	}
	if cfg.Answer.MaxFragments == 0 {
		cfg.Answer.MaxFragments = def.Answer.MaxFragments
	}
	if cfg.Answer.DuplicateJaccard == 0 {
		cfg.Answer.DuplicateJaccard = def.Answer.DuplicateJaccard
	}
	if cfg.Links.MaxLinks == 0 {
		cfg.Links.MaxLinks = def.Links.MaxLinks
	}
	if cfg.Links.MaxTitleLen == 0 {
		cfg.Links.MaxTitleLen = def.Links.MaxTitleLen
	}
	if cfg.Semantic.APIKeyEnv == "" {
		cfg.Semantic.APIKeyEnv = def.Semantic.APIKeyEnv
	}
	if cfg.Semantic.Model == "" {
		cfg.Semantic.Model = def.Semantic.Model
	}
	if cfg.Semantic.TimeoutSecs == 0 {
		cfg.Semantic.TimeoutSecs = def.Semantic.TimeoutSecs
	}
	if cfg.Cache.TTLSecs == 0 {
		cfg.Cache.TTLSecs = def.Cache.TTLSecs
	}
}
