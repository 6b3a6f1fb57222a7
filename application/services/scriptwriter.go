package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/larrywang1/ai-newscast/application/ports/inbound"
	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/domain"
)

// Dialogue sizing per requested minute of episode audio, matching a spoken
// pace of roughly 26-30 words per line.
const (
	minLinesPerMinute = 4
	maxLinesPerMinute = 5
	minWordsPerMinute = 130
	maxWordsPerMinute = 150
)

type scriptwriter struct {
	logger    outbound.LoggerPort
	generator outbound.ScriptGeneratorPort
}

func NewScriptwriter(logger outbound.LoggerPort, generator outbound.ScriptGeneratorPort) inbound.ScriptwriterPort {
	return &scriptwriter{
		logger:    logger,
		generator: generator,
	}
}

func (s *scriptwriter) Write(ctx context.Context, params inbound.WriteScriptParams) ([]domain.DialogueLine, error) {
	response, err := s.generator.Generate(ctx, outbound.GenerateScriptRequest{
		SystemPrompt: s.systemPrompt(params),
		UserPrompt:   s.userPrompt(params.Stories),
	})
	if err != nil {
		s.logger.Error(err, "Script generation call failed")
		return nil, fmt.Errorf("script generation failed: %w", err)
	}

	var lines []domain.DialogueLine
	if err := json.Unmarshal([]byte(trimCodeFences(response)), &lines); err != nil {
		s.logger.Error(err, "Script response did not parse as a dialogue array")
		return nil, &domain.ScriptParseError{Cause: err}
	}
	if len(lines) == 0 {
		return nil, &domain.ScriptParseError{Cause: fmt.Errorf("dialogue array is empty")}
	}

	if err := s.validate(lines, params); err != nil {
		return nil, err
	}

	s.logger.InfoWithFields("Script generated", map[string]interface{}{
		"lines": len(lines),
	})

	return lines, nil
}

// validate enforces the grounding contract on the untrusted model output:
// speakers must exactly match a host name and every source index must fall
// inside the fetched story range. Either violation rejects the whole script.
func (s *scriptwriter) validate(lines []domain.DialogueLine, params inbound.WriteScriptParams) error {
	for _, line := range lines {
		if line.Speaker != params.HostA.Name && line.Speaker != params.HostB.Name {
			return &domain.SpeakerMismatchError{Speaker: line.Speaker}
		}
		if line.Src < 0 || line.Src >= len(params.Stories) {
			return &domain.SourceIndexError{Index: line.Src, StoryCount: len(params.Stories)}
		}
	}
	return nil
}

func (s *scriptwriter) systemPrompt(params inbound.WriteScriptParams) string {
	minutes := params.Spec.Minutes
	return fmt.Sprintf("You are generating a dialogue for a 2-host podcast.\n"+
		"Host1: %s, personality: %s\n"+
		"Host2: %s, personality: %s\n"+
		"Ensure each host is distinct with different vocabulary, energy, and POV.\n"+
		"Use only these stories as sources. Annotate each line with [src: i] where i is the story index.\n"+
		"Make sure there are no invented details.\n"+
		"Alternate turns, light disagreement and callbacks, smart accessible tone.\n"+
		"Make the dialogue decently fast paced, and relatively short, with more banter.\n"+
		"Generate between %d - %d lines of dialogue.\n"+
		"Generate between %d - %d words in the dialogue.\n"+
		"Profanity filter is set to %t.",
		params.HostA.Name, params.HostA.Personality,
		params.HostB.Name, params.HostB.Personality,
		minutes*minLinesPerMinute, minutes*maxLinesPerMinute,
		minutes*minWordsPerMinute, minutes*maxWordsPerMinute,
		params.Spec.ProfanityAllowed)
}

func (s *scriptwriter) userPrompt(stories []domain.Story) string {
	var storyList strings.Builder
	for _, story := range stories {
		storyList.WriteString(fmt.Sprintf("[%d] %s: %s\n", story.Index, story.Title, story.Summary))
	}

	return fmt.Sprintf("Stories:\n%s\n"+
		"Create a dialogue where hosts alternate turns as JSON array:\n"+
		"[\n  {\"speaker\": \"HostName\", \"text\": \"...\", \"src\": i },\n]\n"+
		"Each line must be grounded in the fetched facts (no invented details) and annotated with `[src: i]` indices.\n"+
		"Make sure that i is the index of the story and not the link.\n"+
		"Tone: smart, accessible, no clickbait; add a one-sentence disclaimer if topics are sensitive.\n"+
		"Do not impersonate real voices; use \"celebrity-style\" as personality, not literal cloning.\n"+
		"No medical/financial advice; avoid slurs/harassment.\n"+
		"Respond with the JSON array only.",
		storyList.String())
}

// trimCodeFences unwraps a markdown-fenced response so fenced and bare JSON
// both parse.
func trimCodeFences(response string) string {
	trimmed := strings.TrimSpace(response)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
