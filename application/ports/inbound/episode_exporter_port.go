package inbound

import (
	"github.com/larrywang1/ai-newscast/audio"
	"github.com/larrywang1/ai-newscast/domain"
)

// EpisodeExporterPort writes the run's artifacts under the output directory.
// Transcript and show notes are written before synthesis starts, so a later
// failure leaves them behind; that partial output is expected behavior.
type EpisodeExporterPort interface {
	WriteTranscript(lines []domain.DialogueLine) (string, error)
	WriteShowNotes(stories []domain.Story) (string, error)
	WriteEpisodeAudio(timeline *audio.Timeline) (string, error)
	WriteSubtitles(records []domain.AudioSegmentRecord) (string, error)
}
