package outbound

import "context"

type GenerateScriptRequest struct {
	SystemPrompt string
	UserPrompt   string
}

// ScriptGeneratorPort is the text-generation collaborator. The returned text
// is expected to parse as a JSON array of dialogue lines; parsing and
// validation belong to the scriptwriter, not the adapter.
type ScriptGeneratorPort interface {
	Generate(ctx context.Context, req GenerateScriptRequest) (string, error)
}
