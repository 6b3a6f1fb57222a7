package outbound

import "context"

// RawArticle is one loosely-structured record from the headline source.
// Every field is optional; normalization happens in the story curator.
type RawArticle struct {
	Title       string
	URL         string
	SourceName  string
	Description string
}

type FetchHeadlinesRequest struct {
	Topics     string
	MaxStories int
}

type StorySourcePort interface {
	FetchHeadlines(ctx context.Context, req FetchHeadlinesRequest) ([]RawArticle, error)
}
