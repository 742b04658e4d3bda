package main

import (
	"bytes"
	"log/slog"
	"testing"
	"time"
	"voice-relay/domain"
	"voice-relay/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	defer db.Close()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	transcripts := storage.NewTranscriptRepository(db, log, nil)
	req.NoError(transcripts.StoreEntry("session-one", domain.TranscriptEntry{
		ID: uuid.New(), Speaker: domain.ParticipantA, Spoken: "hello", Translated: "bonjour",
		SourceLanguage: "hi", TargetLanguage: "fr", At: at,
	}))
	req.NoError(transcripts.StoreEntry("session-two", domain.TranscriptEntry{
		ID: uuid.New(), Speaker: domain.ParticipantB, Spoken: "danke", Translated: "thank you",
		SourceLanguage: "de", TargetLanguage: "en", At: at,
	}))
	history := storage.NewHistoryRepository(db, log, nil)
	req.NoError(history.StoreHistory(domain.HistoryEntry{
		ID: uuid.New(), Input: "merci", Translated: "gracias", DetectedLanguage: "fr", TargetLanguage: "es",
		Sentiment: domain.NewSentiment(1), At: at,
	}))

	t.Run("every session", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, dumpTranscripts(&out, transcripts, ""))
		require.Contains(t, out.String(), "bonjour")
		require.Contains(t, out.String(), "thank you")
		require.Contains(t, out.String(), "hi→fr")
		require.Contains(t, out.String(), "2026-03-01 09:30:00")
	})

	t.Run("one session", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, dumpTranscripts(&out, transcripts, "session-two"))
		require.Contains(t, out.String(), "danke")
		require.NotContains(t, out.String(), "bonjour")
	})

	t.Run("history", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, dumpHistory(&out, history))
		require.Contains(t, out.String(), "gracias")
		require.Contains(t, out.String(), "fr→es")
		require.Contains(t, out.String(), "(1.00)")
	})
}
