package domain

// Story is one normalized headline. Indices are assigned in fetch order and
// form a contiguous range starting at zero for the run.
type Story struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Source  string `json:"source"`
	Summary string `json:"summary"`
}

// Persona is one podcast host loaded from the persona file. Name is the
// speaker-match key for dialogue lines, Voice is the synthesis voice token.
type Persona struct {
	Name        string `yaml:"name" json:"name"`
	Personality string `yaml:"personality" json:"personality"`
	Voice       string `yaml:"voice" json:"voice"`
}

// DialogueLine is one scripted utterance. Text may carry an inline
// "[src: i]" citation marker; Src must reference a valid story index.
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Src     int    `json:"src"`
}

// AudioSegmentRecord pins a dialogue line to its spoken window on the episode
// timeline. End excludes the inter-line pause; the record sequence is
// index-aligned 1:1 with the dialogue lines that produced it.
type AudioSegmentRecord struct {
	Speaker      string  `json:"speaker"`
	Text         string  `json:"text"`
	Src          int     `json:"src"`
	StartSeconds float64 `json:"start"`
	EndSeconds   float64 `json:"end"`
}
