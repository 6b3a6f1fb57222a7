package inbound

import (
	"context"

	"github.com/larrywang1/ai-newscast/domain"
)

type RunEpisodeParams struct {
	HostA            domain.Persona
	HostB            domain.Persona
	Minutes          int
	Topics           string
	ProfanityAllowed bool
	MaxStories       int
	PauseSeconds     float64
}

// EpisodePipelinePort runs one complete episode: fetch, script, synthesis,
// export, optional publish. Returns domain.ErrNoStories when the fetch comes
// back empty; every other error is fatal to the run.
type EpisodePipelinePort interface {
	Run(ctx context.Context, params RunEpisodeParams) error
}
