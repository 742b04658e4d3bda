// Package domain contains core concepts of the voice relay.
// This file defines the conversation state and its transcript.
// Transcript entries are immutable once appended.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranscriptEntry records one completed relay step.
type TranscriptEntry struct {
	ID             uuid.UUID
	Speaker        ParticipantID
	Spoken         string
	Translated     string
	SourceLanguage LanguageCode
	TargetLanguage LanguageCode
	At             time.Time
}

// ConversationState is the aggregate mutated by relay steps.
// Only the conversation session holding it may call its mutating methods.
type ConversationState struct {
	Turn       ParticipantID
	Transcript []TranscriptEntry
	Languages  map[ParticipantID]LanguageCode
}

func NewConversationState(langA, langB LanguageCode) *ConversationState {
	return &ConversationState{
		Turn:       ParticipantA,
		Transcript: nil,
		Languages: map[ParticipantID]LanguageCode{
			ParticipantA: langA,
			ParticipantB: langB,
		},
	}
}

// Speaker returns the active participant and the language they speak.
func (s *ConversationState) Speaker() Participant {
	return Participant{ID: s.Turn, Language: s.Languages[s.Turn]}
}

// Listener returns the participant the active speaker is talking to.
func (s *ConversationState) Listener() Participant {
	other := s.Turn.Other()
	return Participant{ID: other, Language: s.Languages[other]}
}

// SetLanguages reassigns both languages. Existing entries keep the codes they were recorded with.
func (s *ConversationState) SetLanguages(langA, langB LanguageCode) {
	s.Languages[ParticipantA] = langA
	s.Languages[ParticipantB] = langB
}

// Commit appends the entry of the active speaker and hands the turn to the listener.
// Both happen together or not at all.
func (s *ConversationState) Commit(spoken, translated string, at time.Time) TranscriptEntry {
	return s.CommitAs(uuid.New(), spoken, translated, at)
}

// CommitAs is Commit with an entry id allocated by the caller.
func (s *ConversationState) CommitAs(id uuid.UUID, spoken, translated string, at time.Time) TranscriptEntry {
	speaker, listener := s.Speaker(), s.Listener()
	entry := TranscriptEntry{
		ID:             id,
		Speaker:        speaker.ID,
		Spoken:         spoken,
		Translated:     translated,
		SourceLanguage: speaker.Language,
		TargetLanguage: listener.Language,
		At:             at,
	}
	s.Transcript = append(s.Transcript, entry)
	s.Turn = listener.ID
	return entry
}

// Reset empties the transcript and gives the turn back to A.
func (s *ConversationState) Reset() {
	s.Transcript = nil
	s.Turn = ParticipantA
}

// Snapshot returns a deep copy safe to hand to the presentation layer.
func (s *ConversationState) Snapshot() ConversationState {
	transcript := make([]TranscriptEntry, len(s.Transcript))
	copy(transcript, s.Transcript)
	languages := make(map[ParticipantID]LanguageCode, len(s.Languages))
	for id, code := range s.Languages {
		languages[id] = code
	}
	return ConversationState{
		Turn:       s.Turn,
		Transcript: transcript,
		Languages:  languages,
	}
}
