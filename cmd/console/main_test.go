package main

import (
	"bytes"
	"fmt"
	"testing"
	"time"
	"voice-relay/domain"

	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	languages := domain.NewLanguageRegistry(domain.DefaultLanguages)
	at := time.Now().Add(-time.Minute)

	t.Run("should print a turn without colours", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		p := newPrinter(&out, false, languages)

		p.turn(domain.RelayResult{
			Speaker:    domain.ParticipantA,
			Spoken:     "hello",
			Translated: "bonjour",
			AudioErr:   fmt.Errorf("quota exceeded"),
			Entry:      domain.TranscriptEntry{SourceLanguage: "hi", TargetLanguage: "fr"},
		}, 2048, 150*time.Millisecond)

		req.Contains(out.String(), "[A] Hindi → French")
		req.Contains(out.String(), "2.0 kB")
		req.Contains(out.String(), "translated: bonjour")
		req.Contains(out.String(), "audio: quota exceeded")
		req.NotContains(out.String(), "\x1b[")
	})

	t.Run("should keep the turn on failure", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		p := newPrinter(&out, false, languages)

		p.failure(domain.Participant{ID: domain.ParticipantB, Language: "fr"}, "silence.wav", fmt.Errorf("nothing heard"))

		req.Equal("[B] silence.wav: nothing heard (still B's turn)\n", out.String())
	})

	t.Run("should render the transcript table", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		p := newPrinter(&out, false, languages)
		state := domain.NewConversationState("hi", "fr")
		state.Commit("hello", "bonjour", at)
		state.Commit("merci", "धन्यवाद", at)

		p.transcript(state.Snapshot())

		req.Contains(out.String(), "SPEAKER")
		req.Contains(out.String(), "bonjour")
		req.Contains(out.String(), "Hindi")
		req.Contains(out.String(), "1 minute ago")
	})

	t.Run("should say when nothing was relayed", func(t *testing.T) {
		var out bytes.Buffer
		newPrinter(&out, false, languages).transcript(domain.ConversationState{})
		require.Contains(t, out.String(), "Nothing was relayed.")
	})
}

func TestExtensionOf(t *testing.T) {
	req := require.New(t)
	req.Equal(".mp3", extensionOf("audio/mpeg"))
	req.Equal(".wav", extensionOf("audio/wav"))
	req.Equal(".bin", extensionOf("application/x-unknown-thing"))
}
