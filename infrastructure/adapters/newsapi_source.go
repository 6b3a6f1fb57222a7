package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/config"
)

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPISource struct {
	ContentFetcher
	logger        outbound.LoggerPort
	newsAPIConfig *config.NewsAPIConfig
}

func NewNewsAPISource(contentFetcher ContentFetcher, newsAPIConfig *config.NewsAPIConfig, logger outbound.LoggerPort) outbound.StorySourcePort {
	return &newsAPISource{
		ContentFetcher: contentFetcher,
		logger:         logger,
		newsAPIConfig:  newsAPIConfig,
	}
}

func (n *newsAPISource) FetchHeadlines(ctx context.Context, req outbound.FetchHeadlinesRequest) ([]outbound.RawArticle, error) {
	httpReq, err := n.getRequest(ctx, req)
	if err != nil {
		n.logger.Error(err, "Failed to construct the headline request")
		return nil, err
	}

	payload, err := n.FetchContent(httpReq)
	if err != nil {
		return nil, fmt.Errorf("headline fetch failed: %w", err)
	}

	var parsed newsAPIResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		n.logger.Error(err, "Failed to unmarshal the headline response")
		return nil, fmt.Errorf("failed to parse headline response: %w", err)
	}
	if parsed.Status != "ok" {
		return nil, fmt.Errorf("headline source returned status %q: %s", parsed.Status, parsed.Message)
	}

	articles := make([]outbound.RawArticle, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		articles = append(articles, outbound.RawArticle{
			Title:       a.Title,
			URL:         a.URL,
			SourceName:  a.Source.Name,
			Description: a.Description,
		})
	}

	return articles, nil
}

func (n *newsAPISource) getRequest(ctx context.Context, req outbound.FetchHeadlinesRequest) (*http.Request, error) {
	query := url.Values{}
	query.Set("language", n.newsAPIConfig.Language)
	query.Set("pageSize", strconv.Itoa(req.MaxStories))
	if req.Topics != "" {
		query.Set("q", req.Topics)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, n.newsAPIConfig.ApiUrl+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("X-Api-Key", n.newsAPIConfig.ApiKey)

	return httpReq, nil
}
