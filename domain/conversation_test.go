package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestConversationState_New_Starts_With_A(t *testing.T) {
	req := require.New(t)
	state := NewConversationState("hi", "fr")

	req.Equal(ParticipantA, state.Turn)
	req.Empty(state.Transcript)
	req.Equal(Participant{ID: ParticipantA, Language: "hi"}, state.Speaker())
	req.Equal(Participant{ID: ParticipantB, Language: "fr"}, state.Listener())
}

func TestConversationState_Commit_Appends_And_Flips(t *testing.T) {
	req := require.New(t)
	state := NewConversationState("hi", "fr")
	at := time.Now().UTC()

	// When A speaks
	entry := state.Commit("hello", "bonjour", at)

	// Then the entry is recorded with A's and B's languages and B is next
	req.Equal(ParticipantA, entry.Speaker)
	req.Equal("hello", entry.Spoken)
	req.Equal("bonjour", entry.Translated)
	req.Equal(LanguageCode("hi"), entry.SourceLanguage)
	req.Equal(LanguageCode("fr"), entry.TargetLanguage)
	req.Equal(at, entry.At)
	req.Len(state.Transcript, 1)
	req.Equal(ParticipantB, state.Turn)

	// When B answers
	state.Commit("merci", "dhanyavaad", at)
	req.Len(state.Transcript, 2)
	req.Equal(ParticipantA, state.Turn)
	req.Equal(ParticipantB, state.Transcript[1].Speaker)
	req.Equal(LanguageCode("fr"), state.Transcript[1].SourceLanguage)
}

func TestConversationState_CommitAs_Keeps_Given_ID(t *testing.T) {
	req := require.New(t)
	state := NewConversationState("hi", "fr")
	id := uuid.New()

	entry := state.CommitAs(id, "hello", "bonjour", time.Now())

	req.Equal(id, entry.ID)
	req.Equal(id, state.Transcript[0].ID)
	req.Equal(ParticipantB, state.Turn)
}

func TestConversationState_SetLanguages_Keeps_Existing_Entries(t *testing.T) {
	req := require.New(t)
	state := NewConversationState("hi", "fr")
	state.Commit("hello", "bonjour", time.Now())

	state.SetLanguages("de", "ja")

	req.Equal(LanguageCode("hi"), state.Transcript[0].SourceLanguage)
	req.Equal(LanguageCode("fr"), state.Transcript[0].TargetLanguage)
	req.Equal(ParticipantB, state.Turn)
	req.Equal(LanguageCode("ja"), state.Speaker().Language)
}

func TestConversationState_Reset_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	state := NewConversationState("hi", "fr")
	state.Commit("hello", "bonjour", time.Now())

	state.Reset()
	once := state.Snapshot()
	state.Reset()

	req.Empty(state.Transcript)
	req.Equal(ParticipantA, state.Turn)
	req.Equal(once, state.Snapshot())
}

func TestConversationState_Snapshot_Is_Detached(t *testing.T) {
	req := require.New(t)
	state := NewConversationState("hi", "fr")
	state.Commit("hello", "bonjour", time.Now())

	snapshot := state.Snapshot()
	snapshot.Transcript[0].Translated = "salut"
	snapshot.Languages[ParticipantA] = "ta"

	req.Equal("bonjour", state.Transcript[0].Translated)
	req.Equal(LanguageCode("hi"), state.Languages[ParticipantA])
}

func TestParticipantID_Other(t *testing.T) {
	req := require.New(t)
	req.Equal(ParticipantB, ParticipantA.Other())
	req.Equal(ParticipantA, ParticipantB.Other())
	req.True(ParticipantA.Valid())
	req.False(ParticipantID("C").Valid())
}
