package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"courseta/internal/config"
	"courseta/internal/domain"
	"courseta/internal/engine"
	"courseta/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, curated, forum string
	var debug bool
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.StringVar(&curated, "curated", "", "Comma-separated JSON files with curated course records")
	flag.StringVar(&forum, "forum", "", "Comma-separated JSON files with forum post records")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if curated == "" && forum == "" {
		fmt.Println("Usage: ta [--config=config.yaml] --curated=course.json [--forum=posts.json]")
		os.Exit(1)
	}

	log, err := newLogger(debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	sources := readSources(curated, domain.SourceCurated, log)
	sources = append(sources, readSources(forum, domain.SourceForum, log)...)

	eng := engine.New(cfg, log)
	if err := eng.Load(sources); err != nil {
		log.Warn("engine started degraded", zap.Error(err))
	}

	m := tui.New(eng, eng.CorpusSize())
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal("tui failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

type fileRecord struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Author  string `json:"author,omitempty"`
}

// readSources turns each JSON file into one named record source. An
// unreadable file is logged and contributes zero records; the engine still
// starts.
func readSources(paths string, sourceType domain.SourceType, log *zap.Logger) []domain.RecordSource {
	var sources []domain.RecordSource
	for _, path := range strings.Split(paths, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		src := domain.RecordSource{Name: path, Type: sourceType}
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("record source unavailable", zap.String("path", path), zap.Error(err))
			sources = append(sources, src)
			continue
		}
		var records []fileRecord
		if err := json.Unmarshal(data, &records); err != nil {
			log.Warn("record source unreadable", zap.String("path", path), zap.Error(err))
			sources = append(sources, src)
			continue
		}
		for _, r := range records {
			src.Records = append(src.Records, domain.RawRecord{
				Title:   r.Title,
				Content: r.Content,
				URL:     r.URL,
				Author:  r.Author,
			})
		}
		sources = append(sources, src)
	}
	return sources
}
