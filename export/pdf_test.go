package export

import (
	"bytes"
	"testing"
	"time"
	"voice-relay/domain"

	"github.com/stretchr/testify/require"
)

func TestPDFExporter_History(t *testing.T) {
	req := require.New(t)
	exporter := NewPDFExporter(domain.NewLanguageRegistry(domain.DefaultLanguages))
	var buf bytes.Buffer

	err := exporter.History(&buf, []domain.HistoryEntry{
		{Input: "hello", Translated: "bonjour", DetectedLanguage: "en", TargetLanguage: "fr",
			Sentiment: domain.NewSentiment(0), At: time.Now()},
		{Input: "thank you", Translated: "ありがとう", DetectedLanguage: domain.UndeterminedLanguage, TargetLanguage: "ja",
			Sentiment: domain.NewSentiment(1), At: time.Now()},
	})

	req.NoError(err)
	req.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFExporter_Transcript(t *testing.T) {
	req := require.New(t)
	exporter := NewPDFExporter(domain.NewLanguageRegistry(domain.DefaultLanguages))
	state := domain.NewConversationState("hi", "fr")
	state.Commit("hello", "bonjour", time.Now())
	state.Commit("ça va ?", "कैसे हो?", time.Now())
	var buf bytes.Buffer

	err := exporter.Transcript(&buf, state.Transcript)

	req.NoError(err)
	req.True(bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	req.Contains(buf.String(), "%%EOF")
}
