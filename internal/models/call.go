package models

// Transcription is the raw model output for one audio recording. Nothing is
// persisted; every record lives for a single request.
type Transcription struct {
	Text     string `json:"transcription"`
	FileName string `json:"fileName"`
}

// Summary is text produced from a transcript, optionally biased by the
// caller's permanent instructions.
type Summary struct {
	Text string `json:"summary"`
}

// CallReport bundles everything the drive workflow produces for one
// recording: the transcript, both summaries, and the archive display name.
type CallReport struct {
	FileName        string `json:"fileName"`
	Transcription   string `json:"transcription"`
	GeneralSummary  string `json:"generalSummary"`
	BusinessSummary string `json:"businessSummary"`
}
