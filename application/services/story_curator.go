package services

import (
	"github.com/larrywang1/ai-newscast/application/ports/inbound"
	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/domain"
)

// UnknownSource stands in for articles whose source name is missing. Other
// missing fields default to the empty string.
const UnknownSource = "unknown"

type storyCurator struct {
	logger outbound.LoggerPort
}

func NewStoryCurator(logger outbound.LoggerPort) inbound.StoryCuratorPort {
	return &storyCurator{
		logger: logger,
	}
}

func (s *storyCurator) Normalize(raw []outbound.RawArticle, limit int) []domain.Story {
	if limit < 0 {
		limit = 0
	}
	if len(raw) > limit {
		raw = raw[:limit]
	}

	stories := make([]domain.Story, 0, len(raw))
	for i, article := range raw {
		source := article.SourceName
		if source == "" {
			source = UnknownSource
		}
		stories = append(stories, domain.Story{
			Index:   i,
			Title:   article.Title,
			URL:     article.URL,
			Source:  source,
			Summary: article.Description,
		})
	}

	s.logger.InfoWithFields("Normalized fetched stories", map[string]interface{}{
		"fetched": len(raw),
		"kept":    len(stories),
	})

	return stories
}
