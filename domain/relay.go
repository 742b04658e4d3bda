package domain

// RelayResult is what a successful relay step returns for presentation.
// AudioErr is set when the translation was recorded but its audio could not be produced.
type RelayResult struct {
	Speaker    ParticipantID
	Spoken     string
	Translated string
	Audio      *AudioArtifact
	AudioErr   error
	Entry      TranscriptEntry
	// State is the snapshot taken right after the commit.
	State ConversationState
}

// TranslationResult is the outcome of the single-shot path.
type TranslationResult struct {
	Entry    HistoryEntry
	Audio    *AudioArtifact
	AudioErr error
}
