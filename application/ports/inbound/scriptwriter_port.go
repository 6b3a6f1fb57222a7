package inbound

import (
	"context"

	"github.com/larrywang1/ai-newscast/domain"
)

// ScriptSpec sizes the requested dialogue. Line and word budgets are derived
// from the target episode length in minutes.
type ScriptSpec struct {
	Minutes          int
	ProfanityAllowed bool
}

type WriteScriptParams struct {
	Stories []domain.Story
	HostA   domain.Persona
	HostB   domain.Persona
	Spec    ScriptSpec
}

// ScriptwriterPort produces the grounded two-host dialogue. Every returned
// line carries a speaker matching one host name and a source index inside the
// story range.
type ScriptwriterPort interface {
	Write(ctx context.Context, params WriteScriptParams) ([]domain.DialogueLine, error)
}
