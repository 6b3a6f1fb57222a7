package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/larrywang1/ai-newscast/application/ports/inbound"
	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/audio"
	"github.com/larrywang1/ai-newscast/domain"
)

// DefaultPauseSeconds is the silence inserted between consecutive lines.
const DefaultPauseSeconds = 1.0

var (
	citationMarker = regexp.MustCompile(`\[src:\s*\d+\]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// CleanSpokenText removes inline citation markers and normalizes whitespace.
// Markers are transcript bookkeeping, not something to be read aloud.
// Cleaning is idempotent.
func CleanSpokenText(text string) string {
	cleaned := citationMarker.ReplaceAllString(text, " ")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

type timelineAssembler struct {
	logger      outbound.LoggerPort
	synthesizer outbound.SpeechSynthesizerPort
	workerPool  outbound.TaskDispatcher
	sampleRate  int
}

func NewTimelineAssembler(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort,
	workerPool outbound.TaskDispatcher, sampleRate int) inbound.TimelineAssemblerPort {
	return &timelineAssembler{
		logger:      logger,
		synthesizer: synthesizer,
		workerPool:  workerPool,
		sampleRate:  sampleRate,
	}
}

// Assemble synthesizes every line on the worker pool, then folds the clips
// into the timeline strictly in line order. Offsets come from the ordered
// fold, never from synthesis completion order.
func (t *timelineAssembler) Assemble(ctx context.Context, params inbound.AssembleTimelineParams) (*audio.Timeline, []domain.AudioSegmentRecord, error) {
	voices, err := t.resolveVoices(params)
	if err != nil {
		return nil, nil, err
	}

	clips, err := t.synthesizeAll(ctx, params.Lines, voices)
	if err != nil {
		return nil, nil, err
	}

	timeline := audio.NewTimeline(t.sampleRate)
	records := make([]domain.AudioSegmentRecord, 0, len(params.Lines))
	cursor := 0.0

	for i, line := range params.Lines {
		clip := clips[i]
		duration := clip.DurationSeconds()

		if err := timeline.AppendClip(clip); err != nil {
			return nil, nil, fmt.Errorf("failed to append clip for line %d: %w", i, err)
		}
		timeline.AppendSilence(params.PauseSeconds)

		records = append(records, domain.AudioSegmentRecord{
			Speaker:      line.Speaker,
			Text:         line.Text,
			Src:          line.Src,
			StartSeconds: cursor,
			EndSeconds:   cursor + duration,
		})
		cursor += duration + params.PauseSeconds

		// Release the decoded buffer; only the timeline copy is needed now.
		clips[i] = audio.Clip{}
	}

	t.logger.InfoWithFields("Episode timeline assembled", map[string]interface{}{
		"lines":            len(records),
		"duration_seconds": timeline.DurationSeconds(),
	})

	return timeline, records, nil
}

// resolveVoices maps each line's speaker to a host voice before any
// synthesis call is spent. A speaker matching neither host violates the
// scriptwriter's contract and fails the run.
func (t *timelineAssembler) resolveVoices(params inbound.AssembleTimelineParams) ([]string, error) {
	voices := make([]string, len(params.Lines))
	for i, line := range params.Lines {
		switch line.Speaker {
		case params.HostA.Name:
			voices[i] = params.HostA.Voice
		case params.HostB.Name:
			voices[i] = params.HostB.Voice
		default:
			return nil, &domain.SpeakerMismatchError{Speaker: line.Speaker}
		}
	}
	return voices, nil
}

// synthesizeAll fans each line out to the worker pool and collects the
// decoded clips keyed by line index, preserving the 1:1 line-to-clip
// alignment regardless of completion order.
func (t *timelineAssembler) synthesizeAll(ctx context.Context, lines []domain.DialogueLine, voices []string) ([]audio.Clip, error) {
	newCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	clips := make([]audio.Clip, len(lines))
	errs := make([]error, len(lines))
	var done int32

	var wg sync.WaitGroup
	for i := range lines {
		i := i
		wg.Add(1)
		submitErr := t.workerPool.Submit(func() {
			defer wg.Done()
			select {
			case <-newCtx.Done():
				errs[i] = newCtx.Err()
				return
			default:
			}

			clip, err := t.synthesizeLine(newCtx, lines[i], voices[i])
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			clips[i] = clip

			t.logger.InfoWithFields("Synthesized line", map[string]interface{}{
				"done":  atomic.AddInt32(&done, 1),
				"total": len(lines),
			})
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
			cancel()
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.logger.ErrorWithFields(err, "Speech synthesis failed", map[string]interface{}{
				"line": i,
			})
			return nil, fmt.Errorf("speech synthesis failed for line %d: %w", i, err)
		}
	}

	return clips, nil
}

func (t *timelineAssembler) synthesizeLine(ctx context.Context, line domain.DialogueLine, voiceID string) (audio.Clip, error) {
	payload, err := t.synthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Text:    CleanSpokenText(line.Text),
		VoiceID: voiceID,
	})
	if err != nil {
		return audio.Clip{}, err
	}

	clip, err := audio.DecodeWAV(payload)
	if err != nil {
		return audio.Clip{}, fmt.Errorf("failed to decode synthesized waveform: %w", err)
	}

	if clip.SampleRate != t.sampleRate {
		return audio.Clip{}, fmt.Errorf("synthesizer returned sample rate %d, expected %d", clip.SampleRate, t.sampleRate)
	}

	return clip, nil
}
