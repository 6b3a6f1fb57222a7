package services

import (
	"context"
	"os"
	"sync"
	"sync/atomic"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
	"github.com/larrywang1/ai-newscast/audio"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) Warn(string)                                           {}

// goDispatcher runs every task on its own goroutine, exercising the
// re-serialization logic under real concurrency.
type goDispatcher struct{}

func (goDispatcher) Submit(task func()) error {
	go task()
	return nil
}

type fakeScriptGenerator struct {
	response string
	err      error

	mu          sync.Mutex
	lastRequest outbound.GenerateScriptRequest
}

func (f *fakeScriptGenerator) Generate(_ context.Context, req outbound.GenerateScriptRequest) (string, error) {
	f.mu.Lock()
	f.lastRequest = req
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeSynthesizer returns a WAV clip whose duration depends on the cleaned
// text it receives, and records every request.
type fakeSynthesizer struct {
	sampleRate int
	durations  map[string]float64 // cleaned text -> clip seconds
	err        error

	mu       sync.Mutex
	requests []outbound.SynthesizeSpeechRequest
	calls    int32
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeSpeechRequest) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	seconds := f.durations[req.Text]
	samples := make([]int16, int(seconds*float64(f.sampleRate)))
	return audio.EncodeWAV(samples, f.sampleRate)
}

type fakeStorySource struct {
	articles []outbound.RawArticle
	err      error
}

func (f *fakeStorySource) FetchHeadlines(context.Context, outbound.FetchHeadlinesRequest) ([]outbound.RawArticle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

// fakeEncoder renames the WAV file into place instead of invoking ffmpeg.
type fakeEncoder struct {
	err error
}

func (f *fakeEncoder) Encode(wavFileName string, outputFileName string) error {
	if f.err != nil {
		return f.err
	}
	return os.Rename(wavFileName, outputFileName)
}
