package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/audio"
	"github.com/larrywang1/ai-newscast/config"
)

func TestCartesiaSynthesizer_Synthesize(t *testing.T) {
	wavPayload, err := audio.EncodeWAV(make([]int16, 4410), 44100)
	if err != nil {
		t.Fatal("failed to build waveform fixture:", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tts/bytes" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Error("missing API key header")
		}
		if r.Header.Get("Cartesia-Version") == "" {
			t.Error("missing version header")
		}

		body, _ := io.ReadAll(r.Body)
		var req map[string]interface{}
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		if req["transcript"] != "Hello world" {
			t.Errorf("unexpected transcript %v", req["transcript"])
		}
		voice, _ := req["voice"].(map[string]interface{})
		if voice["mode"] != "id" || voice["id"] != "voice-a" {
			t.Errorf("unexpected voice %v", req["voice"])
		}
		format, _ := req["output_format"].(map[string]interface{})
		if format["container"] != "wav" || format["encoding"] != "pcm_s16le" {
			t.Errorf("unexpected output format %v", req["output_format"])
		}

		_, _ = w.Write(wavPayload)
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	synth := NewCartesiaSynthesizer(NewContentFetcher(logger), &config.CartesiaConfig{
		ApiUrl:     server.URL,
		ApiKey:     "test-key",
		Version:    "2024-06-10",
		ModelID:    "sonic-3",
		SampleRate: 44100,
	}, logger)

	payload, err := synth.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:    "Hello world",
		VoiceID: "voice-a",
	})
	if err != nil {
		t.Fatal("failed to synthesize:", err)
	}

	clip, err := audio.DecodeWAV(payload)
	if err != nil {
		t.Fatal("synthesized payload is not decodable WAV:", err)
	}
	if clip.SampleRate != 44100 || len(clip.Samples) != 4410 {
		t.Fatalf("unexpected clip %d samples at %d Hz", len(clip.Samples), clip.SampleRate)
	}
}

func TestCartesiaSynthesizer_SynthesizeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	logger := NewZerologWrapper()
	synth := NewCartesiaSynthesizer(NewContentFetcher(logger), &config.CartesiaConfig{
		ApiUrl:     server.URL,
		ApiKey:     "test-key",
		Version:    "2024-06-10",
		ModelID:    "sonic-3",
		SampleRate: 44100,
	}, logger)

	_, err := synth.Synthesize(context.Background(), outbound.SynthesizeSpeechRequest{
		Text:    "Hello world",
		VoiceID: "voice-a",
	})
	if err == nil {
		t.Fatal("expected synthesis failure for bad gateway response")
	}
}
