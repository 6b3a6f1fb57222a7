package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/larrywang1/ai-newscast/application/ports/inbound"
	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/domain"
)

type episodePipeline struct {
	logger      outbound.LoggerPort
	storySource outbound.StorySourcePort
	curator     inbound.StoryCuratorPort
	writer      inbound.ScriptwriterPort
	assembler   inbound.TimelineAssemblerPort
	exporter    inbound.EpisodeExporterPort
	publisher   outbound.EpisodePublisherPort // nil disables publishing
}

func NewEpisodePipeline(logger outbound.LoggerPort, storySource outbound.StorySourcePort,
	curator inbound.StoryCuratorPort, writer inbound.ScriptwriterPort,
	assembler inbound.TimelineAssemblerPort, exporter inbound.EpisodeExporterPort,
	publisher outbound.EpisodePublisherPort) inbound.EpisodePipelinePort {
	return &episodePipeline{
		logger:      logger,
		storySource: storySource,
		curator:     curator,
		writer:      writer,
		assembler:   assembler,
		exporter:    exporter,
		publisher:   publisher,
	}
}

// Run executes one episode end to end. Stages run strictly in order; the
// first failure aborts the rest of the run. Transcript and show notes land
// before synthesis starts, so a synthesis failure leaves them behind.
func (p *episodePipeline) Run(ctx context.Context, params inbound.RunEpisodeParams) error {
	episodeID := uuid.NewString()
	p.logger.InfoWithFields("Fetching stories", map[string]interface{}{
		"episode_id": episodeID,
		"topics":     params.Topics,
	})

	raw, err := p.storySource.FetchHeadlines(ctx, outbound.FetchHeadlinesRequest{
		Topics:     params.Topics,
		MaxStories: params.MaxStories,
	})
	if err != nil {
		return fmt.Errorf("story fetch failed: %w", err)
	}

	stories := p.curator.Normalize(raw, params.MaxStories)
	if len(stories) == 0 {
		return domain.ErrNoStories
	}

	p.logger.Info("Generating script")
	lines, err := p.writer.Write(ctx, inbound.WriteScriptParams{
		Stories: stories,
		HostA:   params.HostA,
		HostB:   params.HostB,
		Spec: inbound.ScriptSpec{
			Minutes:          params.Minutes,
			ProfanityAllowed: params.ProfanityAllowed,
		},
	})
	if err != nil {
		return err
	}

	p.logger.Info("Writing script artifacts")
	transcriptPath, err := p.exporter.WriteTranscript(lines)
	if err != nil {
		return err
	}
	notesPath, err := p.exporter.WriteShowNotes(stories)
	if err != nil {
		return err
	}

	p.logger.Info("Synthesizing speech")
	timeline, records, err := p.assembler.Assemble(ctx, inbound.AssembleTimelineParams{
		Lines:        lines,
		HostA:        params.HostA,
		HostB:        params.HostB,
		PauseSeconds: params.PauseSeconds,
	})
	if err != nil {
		return err
	}

	p.logger.Info("Writing episode artifacts")
	episodePath, err := p.exporter.WriteEpisodeAudio(timeline)
	if err != nil {
		return err
	}
	subtitlesPath, err := p.exporter.WriteSubtitles(records)
	if err != nil {
		return err
	}

	if p.publisher != nil {
		p.logger.Info("Publishing episode bundle")
		_, err := p.publisher.Publish(ctx, outbound.PublishEpisodeRequest{
			EpisodeID: episodeID,
			FileNames: []string{episodePath, subtitlesPath, transcriptPath, notesPath},
		})
		if err != nil {
			return fmt.Errorf("episode publish failed: %w", err)
		}
	}

	p.logger.InfoWithFields("Episode complete", map[string]interface{}{
		"episode_id": episodeID,
		"lines":      len(records),
	})

	return nil
}
