package inbound

import (
	"context"

	"github.com/larrywang1/ai-newscast/audio"
	"github.com/larrywang1/ai-newscast/domain"
)

type AssembleTimelineParams struct {
	Lines        []domain.DialogueLine
	HostA        domain.Persona
	HostB        domain.Persona
	PauseSeconds float64
}

// TimelineAssemblerPort synthesizes each dialogue line and concatenates the
// clips, with a fixed pause between lines, into one episode timeline. The
// returned records are index-aligned 1:1 with the input lines.
type TimelineAssemblerPort interface {
	Assemble(ctx context.Context, params AssembleTimelineParams) (*audio.Timeline, []domain.AudioSegmentRecord, error)
}
