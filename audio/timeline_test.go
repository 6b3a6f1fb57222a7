package audio

import (
	"math"
	"testing"
)

func TestClipDurationSeconds(t *testing.T) {
	clip := Clip{Samples: make([]int16, 88200), SampleRate: 44100}
	if d := clip.DurationSeconds(); d != 2.0 {
		t.Fatalf("duration = %v, want 2.0", d)
	}
	if d := (Clip{}).DurationSeconds(); d != 0 {
		t.Fatalf("zero clip duration = %v", d)
	}
}

func TestSilence(t *testing.T) {
	clip := Silence(1.5, 44100)
	if got := clip.DurationSeconds(); math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("silence duration = %v, want 1.5", got)
	}
	for i, s := range clip.Samples {
		if s != 0 {
			t.Fatalf("silence sample %d is %d", i, s)
		}
	}
}

func TestTimelineConcatenation(t *testing.T) {
	timeline := NewTimeline(44100)

	if err := timeline.AppendClip(Clip{Samples: make([]int16, 44100), SampleRate: 44100}); err != nil {
		t.Fatal("failed to append first clip:", err)
	}
	timeline.AppendSilence(1.0)
	if err := timeline.AppendClip(Clip{Samples: make([]int16, 22050), SampleRate: 44100}); err != nil {
		t.Fatal("failed to append second clip:", err)
	}

	if got := timeline.DurationSeconds(); math.Abs(got-2.5) > 1e-9 {
		t.Fatalf("timeline duration = %v, want 2.5", got)
	}
}

func TestTimelineRejectsMismatchedRate(t *testing.T) {
	timeline := NewTimeline(44100)
	if err := timeline.AppendClip(Clip{Samples: make([]int16, 100), SampleRate: 22050}); err == nil {
		t.Fatal("expected sample-rate mismatch error")
	}
}

func TestTimelineWAVRoundTrip(t *testing.T) {
	timeline := NewTimeline(44100)
	if err := timeline.AppendClip(Clip{Samples: []int16{5, -5, 10}, SampleRate: 44100}); err != nil {
		t.Fatal("failed to append clip:", err)
	}
	timeline.AppendSilence(0)

	payload, err := timeline.WAV()
	if err != nil {
		t.Fatal("failed to serialize timeline:", err)
	}

	clip, err := DecodeWAV(payload)
	if err != nil {
		t.Fatal("failed to decode timeline WAV:", err)
	}
	if len(clip.Samples) != 3 || clip.Samples[0] != 5 || clip.Samples[2] != 10 {
		t.Fatalf("round trip lost samples: %v", clip.Samples)
	}
}
