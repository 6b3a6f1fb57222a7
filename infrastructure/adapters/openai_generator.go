package adapters

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/config"
)

type openAIScriptGenerator struct {
	logger    outbound.LoggerPort
	client    *openai.Client
	gptConfig *config.GptConfig
}

func NewOpenAIScriptGenerator(gptConfig *config.GptConfig, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &openAIScriptGenerator{
		logger:    logger,
		client:    openai.NewClient(gptConfig.ApiKey),
		gptConfig: gptConfig,
	}
}

func (g *openAIScriptGenerator) Generate(ctx context.Context, req outbound.GenerateScriptRequest) (string, error) {
	response, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.gptConfig.Model,
		Temperature: float32(g.gptConfig.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
	})
	if err != nil {
		g.logger.Error(err, "Chat completion request failed")
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}
