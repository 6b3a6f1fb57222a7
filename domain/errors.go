package domain

import (
	"errors"
	"fmt"
)

// ErrNoStories marks an empty headline fetch. It is the one expected terminal
// state: the run ends cleanly with no output files instead of failing.
var ErrNoStories = errors.New("no stories fetched")

// ScriptParseError reports model output that did not parse into the expected
// dialogue structure.
type ScriptParseError struct {
	Cause error
}

func (e *ScriptParseError) Error() string {
	return fmt.Sprintf("script response did not parse as a dialogue array: %v", e.Cause)
}

func (e *ScriptParseError) Unwrap() error {
	return e.Cause
}

// SpeakerMismatchError reports a dialogue line attributed to a speaker that
// matches neither configured host name.
type SpeakerMismatchError struct {
	Speaker string
}

func (e *SpeakerMismatchError) Error() string {
	return fmt.Sprintf("dialogue speaker %q matches neither host", e.Speaker)
}

// SourceIndexError reports a dialogue line grounded in a story index outside
// the fetched range. Model-provided indices are untrusted, so the line is
// rejected rather than clamped.
type SourceIndexError struct {
	Index      int
	StoryCount int
}

func (e *SourceIndexError) Error() string {
	return fmt.Sprintf("dialogue source index %d outside story range [0, %d)", e.Index, e.StoryCount)
}
