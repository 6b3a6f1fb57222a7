package outbound

import "context"

type PublishEpisodeRequest struct {
	EpisodeID string
	FileNames []string
}

type PublishEpisodeResponse struct {
	Keys        []string
	StoreRegion string
}

// EpisodePublisherPort uploads the finished episode bundle to remote storage.
// Publishing is optional; local files remain the primary output.
type EpisodePublisherPort interface {
	Publish(ctx context.Context, req PublishEpisodeRequest) (*PublishEpisodeResponse, error)
}
