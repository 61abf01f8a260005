package links

import (
	"strings"

	"courseta/internal/config"
	"courseta/internal/domain"
)

// placeholderText stands in when an item has no title.
const placeholderText = "Course material"

// Selector walks a ranked match list and keeps the first occurrence of each
// distinct URL, preserving rank order, up to the configured cap.
type Selector struct {
	cfg config.LinksConfig
}

func NewSelector(cfg config.LinksConfig) *Selector {
	return &Selector{cfg: cfg}
}

func (s *Selector) Select(ranked []domain.ScoredMatch) []domain.Link {
	out := []domain.Link{}
	seen := make(map[string]struct{}, s.cfg.MaxLinks)
	for _, match := range ranked {
		if len(out) >= s.cfg.MaxLinks {
			break
		}
		url := match.Item.URL
		if url == "" {
			continue
		}
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}
		out = append(out, domain.Link{URL: url, Text: s.displayText(match.Item.Title)})
	}
	return out
}

func (s *Selector) displayText(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return placeholderText
	}
	if len(title) > s.cfg.MaxTitleLen {
		return title[:s.cfg.MaxTitleLen-3] + "..."
	}
	return title
}
