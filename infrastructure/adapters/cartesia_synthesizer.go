package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/config"
)

type cartesiaVoice struct {
	Mode string `json:"mode"`
	ID   string `json:"id"`
}

type cartesiaOutputFormat struct {
	Container  string `json:"container"`
	SampleRate int    `json:"sample_rate"`
	Encoding   string `json:"encoding"`
}

type cartesiaRequest struct {
	ModelID      string               `json:"model_id"`
	Transcript   string               `json:"transcript"`
	Voice        cartesiaVoice        `json:"voice"`
	OutputFormat cartesiaOutputFormat `json:"output_format"`
}

type cartesiaSynthesizer struct {
	ContentFetcher
	logger         outbound.LoggerPort
	cartesiaConfig *config.CartesiaConfig
}

func NewCartesiaSynthesizer(contentFetcher ContentFetcher, cartesiaConfig *config.CartesiaConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &cartesiaSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		cartesiaConfig: cartesiaConfig,
	}
}

func (c *cartesiaSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	httpReq, err := c.getRequest(ctx, req.Text, req.VoiceID)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to construct the synthesis request", map[string]interface{}{
			"voice_id": req.VoiceID,
		})
		return nil, err
	}

	return c.FetchContent(httpReq)
}

func (c *cartesiaSynthesizer) getRequest(ctx context.Context, text string, voiceID string) (*http.Request, error) {
	// PCM s16le WAV keeps the response directly decodable into the timeline.
	reqBody := cartesiaRequest{
		ModelID:    c.cartesiaConfig.ModelID,
		Transcript: text,
		Voice:      cartesiaVoice{Mode: "id", ID: voiceID},
		OutputFormat: cartesiaOutputFormat{
			Container:  "wav",
			SampleRate: c.cartesiaConfig.SampleRate,
			Encoding:   "pcm_s16le",
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cartesiaConfig.ApiUrl+"/tts/bytes", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("X-API-Key", c.cartesiaConfig.ApiKey)
	httpReq.Header.Set("Cartesia-Version", c.cartesiaConfig.Version)
	httpReq.Header.Set("Content-Type", "application/json")

	return httpReq, nil
}
