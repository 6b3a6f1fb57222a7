package config

import (
	"fmt"
	"os"
)

const defaultCartesiaURL = "https://api.cartesia.ai"

type CartesiaConfig struct {
	ApiUrl     string
	ApiKey     string
	Version    string
	ModelID    string
	SampleRate int
}

func GetCartesiaConfig() (*CartesiaConfig, error) {
	apiKey := os.Getenv("CARTESIA_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CARTESIA_API_KEY must be set")
	}
	apiUrl := os.Getenv("CARTESIA_API_URL")
	if apiUrl == "" {
		apiUrl = defaultCartesiaURL
	}
	modelID := os.Getenv("CARTESIA_MODEL_ID")
	if modelID == "" {
		modelID = "sonic-3"
	}
	return &CartesiaConfig{
		ApiUrl:     apiUrl,
		ApiKey:     apiKey,
		Version:    "2024-06-10",
		ModelID:    modelID,
		SampleRate: 44100,
	}, nil
}
