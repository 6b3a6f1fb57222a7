package config

import (
	"fmt"
	"os"
	"strconv"
)

type GptConfig struct {
	ApiKey      string
	Model       string
	Temperature float64
}

func GetGptConfig() (*GptConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	model := os.Getenv("GPT_MODEL")
	if model == "" {
		return nil, fmt.Errorf("GPT_MODEL must be set")
	}
	temperature := 0.8
	if raw := os.Getenv("GPT_TEMPERATURE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GPT_TEMPERATURE: %w", err)
		}
		temperature = parsed
	}
	return &GptConfig{
		ApiKey:      apiKey,
		Model:       model,
		Temperature: temperature,
	}, nil
}
