package config

import (
	"fmt"
	"os"
)

const defaultNewsAPIURL = "https://newsapi.org/v2/top-headlines"

type NewsAPIConfig struct {
	ApiUrl   string
	ApiKey   string
	Language string
}

func GetNewsAPIConfig() (*NewsAPIConfig, error) {
	apiKey := os.Getenv("NEWSAPI_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("NEWSAPI_KEY must be set")
	}
	apiUrl := os.Getenv("NEWSAPI_URL")
	if apiUrl == "" {
		apiUrl = defaultNewsAPIURL
	}
	language := os.Getenv("NEWSAPI_LANGUAGE")
	if language == "" {
		language = "en"
	}
	return &NewsAPIConfig{
		ApiUrl:   apiUrl,
		ApiKey:   apiKey,
		Language: language,
	}, nil
}
