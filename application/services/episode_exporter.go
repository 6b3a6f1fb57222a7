package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/larrywang1/ai-newscast/application/ports/inbound"
	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/audio"
	"github.com/larrywang1/ai-newscast/domain"
)

const (
	TranscriptFileName = "transcript.jsonl"
	ShowNotesFileName  = "show_notes.md"
	EpisodeFileName    = "episode.mp3"
	SubtitlesFileName  = "episode.vtt"

	showNotesDisclaimer = "*Parody/transformative use. Not financial/medical advice.*"
)

type episodeExporter struct {
	logger    outbound.LoggerPort
	encoder   outbound.EpisodeEncoderPort
	outputDir string
}

func NewEpisodeExporter(logger outbound.LoggerPort, encoder outbound.EpisodeEncoderPort, outputDir string) inbound.EpisodeExporterPort {
	return &episodeExporter{
		logger:    logger,
		encoder:   encoder,
		outputDir: outputDir,
	}
}

// WriteTranscript writes one JSON object per dialogue line, in speaking
// order, newline-delimited.
func (e *episodeExporter) WriteTranscript(lines []domain.DialogueLine) (string, error) {
	var buf strings.Builder
	for _, line := range lines {
		payload, err := json.Marshal(line)
		if err != nil {
			return "", fmt.Errorf("failed to marshal transcript line: %w", err)
		}
		buf.Write(payload)
		buf.WriteByte('\n')
	}
	return e.writeFile(TranscriptFileName, buf.String())
}

// WriteShowNotes writes the Markdown story list with the fixed disclaimer.
func (e *episodeExporter) WriteShowNotes(stories []domain.Story) (string, error) {
	var buf strings.Builder
	buf.WriteString("Show Notes\n\n")
	for _, story := range stories {
		buf.WriteString(fmt.Sprintf("- [%s](%s) (%s): %s\n", story.Title, story.URL, story.Source, story.Summary))
	}
	buf.WriteString("\n" + showNotesDisclaimer + "\n")
	return e.writeFile(ShowNotesFileName, buf.String())
}

// WriteEpisodeAudio serializes the timeline to a temporary WAV file and hands
// it to the encoder for the final compressed episode. The encoder removes the
// temporary file.
func (e *episodeExporter) WriteEpisodeAudio(timeline *audio.Timeline) (string, error) {
	if err := e.ensureOutputDir(); err != nil {
		return "", err
	}

	wavPayload, err := timeline.WAV()
	if err != nil {
		return "", fmt.Errorf("failed to serialize episode timeline: %w", err)
	}

	wavPath := filepath.Join(e.outputDir, "episode.wav")
	if err := os.WriteFile(wavPath, wavPayload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write episode waveform: %w", err)
	}

	episodePath := filepath.Join(e.outputDir, EpisodeFileName)
	if err := e.encoder.Encode(wavPath, episodePath); err != nil {
		return "", fmt.Errorf("failed to encode episode audio: %w", err)
	}

	e.logger.InfoWithFields("Episode audio written", map[string]interface{}{
		"file": episodePath,
	})

	return episodePath, nil
}

// WriteSubtitles writes the timestamped transcript. Unlike the spoken audio,
// subtitle text keeps the citation markers.
func (e *episodeExporter) WriteSubtitles(records []domain.AudioSegmentRecord) (string, error) {
	var buf strings.Builder
	buf.WriteString("Episode Transcript\n\n")
	for _, record := range records {
		buf.WriteString(fmt.Sprintf("%s --> %s\n", formatTimestamp(record.StartSeconds), formatTimestamp(record.EndSeconds)))
		buf.WriteString(fmt.Sprintf("%s: %s\n\n", record.Speaker, record.Text))
	}
	return e.writeFile(SubtitlesFileName, buf.String())
}

func (e *episodeExporter) writeFile(name string, content string) (string, error) {
	if err := e.ensureOutputDir(); err != nil {
		return "", err
	}
	path := filepath.Join(e.outputDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	e.logger.InfoWithFields("Artifact written", map[string]interface{}{
		"file": path,
	})
	return path, nil
}

func (e *episodeExporter) ensureOutputDir() error {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", e.outputDir, err)
	}
	return nil
}

// formatTimestamp renders whole seconds on a zero-based HH:MM:SS clock.
// Offsets past 24h are not handled.
func formatTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
