package services

import (
	"testing"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
)

func TestStoryCurator_Normalize(t *testing.T) {
	curator := NewStoryCurator(nopLogger{})

	raw := []outbound.RawArticle{
		{Title: "First", URL: "https://example.com/1", SourceName: "Wire", Description: "one"},
		{Title: "Second", Description: "two"},
		{Title: "Third", URL: "https://example.com/3", SourceName: "Desk", Description: "three"},
	}

	stories := curator.Normalize(raw, 2)

	if len(stories) != 2 {
		t.Fatalf("expected 2 stories after truncation, got %d", len(stories))
	}
	for i, story := range stories {
		if story.Index != i {
			t.Fatalf("story %d has index %d", i, story.Index)
		}
	}
	if stories[0].Source != "Wire" {
		t.Fatalf("unexpected source %q", stories[0].Source)
	}
}

func TestStoryCurator_NormalizeDefaults(t *testing.T) {
	curator := NewStoryCurator(nopLogger{})

	stories := curator.Normalize([]outbound.RawArticle{{}}, 5)

	if len(stories) != 1 {
		t.Fatalf("expected 1 story, got %d", len(stories))
	}
	story := stories[0]
	if story.Title != "" || story.URL != "" || story.Summary != "" {
		t.Fatalf("missing fields should default to empty strings, got %+v", story)
	}
	if story.Source != UnknownSource {
		t.Fatalf("missing source should default to %q, got %q", UnknownSource, story.Source)
	}
}

func TestStoryCurator_NormalizeEmpty(t *testing.T) {
	curator := NewStoryCurator(nopLogger{})

	if stories := curator.Normalize(nil, 6); len(stories) != 0 {
		t.Fatalf("expected no stories, got %d", len(stories))
	}
}
