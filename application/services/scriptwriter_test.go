package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/larrywang1/ai-newscast/application/ports/inbound"
	"github.com/larrywang1/ai-newscast/domain"
)

func scriptParams() inbound.WriteScriptParams {
	return inbound.WriteScriptParams{
		Stories: []domain.Story{
			{Index: 0, Title: "Rates hold", Summary: "central bank keeps rates"},
			{Index: 1, Title: "Rocket launch", Summary: "booster landed"},
		},
		HostA: domain.Persona{Name: "Ava", Personality: "dry wit", Voice: "voice-a"},
		HostB: domain.Persona{Name: "Ben", Personality: "excitable", Voice: "voice-b"},
		Spec:  inbound.ScriptSpec{Minutes: 5},
	}
}

func TestScriptwriter_Write(t *testing.T) {
	generator := &fakeScriptGenerator{
		response: `[
			{"speaker": "Ava", "text": "Rates stayed put [src: 0]", "src": 0},
			{"speaker": "Ben", "text": "And that booster stuck the landing [src: 1]", "src": 1}
		]`,
	}
	writer := NewScriptwriter(nopLogger{}, generator)

	lines, err := writer.Write(context.Background(), scriptParams())
	if err != nil {
		t.Fatal("failed to write script:", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Speaker != "Ava" || lines[0].Src != 0 {
		t.Fatalf("unexpected first line %+v", lines[0])
	}
	if lines[1].Speaker != "Ben" || lines[1].Src != 1 {
		t.Fatalf("unexpected second line %+v", lines[1])
	}
}

func TestScriptwriter_WriteFencedResponse(t *testing.T) {
	generator := &fakeScriptGenerator{
		response: "```json\n[{\"speaker\": \"Ava\", \"text\": \"hi [src: 0]\", \"src\": 0}]\n```",
	}
	writer := NewScriptwriter(nopLogger{}, generator)

	lines, err := writer.Write(context.Background(), scriptParams())
	if err != nil {
		t.Fatal("fenced JSON should parse:", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
}

func TestScriptwriter_WritePromptBudgets(t *testing.T) {
	generator := &fakeScriptGenerator{
		response: `[{"speaker": "Ava", "text": "hi [src: 0]", "src": 0}]`,
	}
	writer := NewScriptwriter(nopLogger{}, generator)

	if _, err := writer.Write(context.Background(), scriptParams()); err != nil {
		t.Fatal("failed to write script:", err)
	}

	system := generator.lastRequest.SystemPrompt
	// 5 minutes: 20-25 lines, 650-750 words.
	for _, want := range []string{"20 - 25 lines", "650 - 750 words"} {
		if !strings.Contains(system, want) {
			t.Fatalf("system prompt missing %q:\n%s", want, system)
		}
	}
	if !strings.Contains(generator.lastRequest.UserPrompt, "[0] Rates hold") {
		t.Fatal("user prompt does not list indexed stories")
	}
}

func TestScriptwriter_WriteMalformedResponse(t *testing.T) {
	generator := &fakeScriptGenerator{response: "sorry, I cannot do that"}
	writer := NewScriptwriter(nopLogger{}, generator)

	_, err := writer.Write(context.Background(), scriptParams())

	var parseErr *domain.ScriptParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ScriptParseError, got %v", err)
	}
}

func TestScriptwriter_WriteSpeakerMismatch(t *testing.T) {
	generator := &fakeScriptGenerator{
		response: `[{"speaker": "Mallory", "text": "hi [src: 0]", "src": 0}]`,
	}
	writer := NewScriptwriter(nopLogger{}, generator)

	_, err := writer.Write(context.Background(), scriptParams())

	var mismatch *domain.SpeakerMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SpeakerMismatchError, got %v", err)
	}
	if mismatch.Speaker != "Mallory" {
		t.Fatalf("unexpected speaker %q", mismatch.Speaker)
	}
}

func TestScriptwriter_WriteSourceOutOfRange(t *testing.T) {
	generator := &fakeScriptGenerator{
		response: `[{"speaker": "Ava", "text": "hi [src: 7]", "src": 7}]`,
	}
	writer := NewScriptwriter(nopLogger{}, generator)

	_, err := writer.Write(context.Background(), scriptParams())

	var srcErr *domain.SourceIndexError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceIndexError, got %v", err)
	}
	if srcErr.Index != 7 || srcErr.StoryCount != 2 {
		t.Fatalf("unexpected error detail %+v", srcErr)
	}
}

func TestScriptwriter_WriteGenerationFailure(t *testing.T) {
	generator := &fakeScriptGenerator{err: errors.New("upstream timeout")}
	writer := NewScriptwriter(nopLogger{}, generator)

	if _, err := writer.Write(context.Background(), scriptParams()); err == nil {
		t.Fatal("expected generation failure to propagate")
	}
}
