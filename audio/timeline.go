package audio

import "fmt"

// Clip is a decoded run of mono 16-bit PCM samples.
type Clip struct {
	Samples    []int16
	SampleRate int
}

// DurationSeconds is the spoken length of the clip.
func (c Clip) DurationSeconds() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Silence builds a pure-silence clip of the given length.
func Silence(seconds float64, sampleRate int) Clip {
	n := int(seconds * float64(sampleRate))
	if n < 0 {
		n = 0
	}
	return Clip{Samples: make([]int16, n), SampleRate: sampleRate}
}

// Timeline is the linear concatenation of spoken clips and silent pauses that
// becomes the episode audio. Clips are appended in speaking order; the
// timeline is handed off whole to the exporter and never mutated afterwards.
type Timeline struct {
	samples    []int16
	sampleRate int
}

func NewTimeline(sampleRate int) *Timeline {
	return &Timeline{sampleRate: sampleRate}
}

// AppendClip concatenates a clip onto the end of the timeline. Every clip
// must share the timeline's sample rate; mixed rates cannot be concatenated
// without resampling.
func (t *Timeline) AppendClip(c Clip) error {
	if c.SampleRate != t.sampleRate {
		return fmt.Errorf("clip sample rate %d does not match timeline rate %d", c.SampleRate, t.sampleRate)
	}
	t.samples = append(t.samples, c.Samples...)
	return nil
}

// AppendSilence concatenates a silent pause onto the end of the timeline.
func (t *Timeline) AppendSilence(seconds float64) {
	t.samples = append(t.samples, make([]int16, int(seconds*float64(t.sampleRate)))...)
}

// DurationSeconds is the total length of the timeline so far.
func (t *Timeline) DurationSeconds() float64 {
	if t.sampleRate <= 0 {
		return 0
	}
	return float64(len(t.samples)) / float64(t.sampleRate)
}

// SampleRate returns the timeline's fixed sample rate.
func (t *Timeline) SampleRate() int {
	return t.sampleRate
}

// WAV serializes the full timeline as a WAV byte stream.
func (t *Timeline) WAV() ([]byte, error) {
	return EncodeWAV(t.samples, t.sampleRate)
}
