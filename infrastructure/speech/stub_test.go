package speech

import (
	"context"
	"testing"
	"voice-relay/domain"

	"github.com/stretchr/testify/require"
)

func TestScriptedRecognizer_Recognize(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	recognizer := NewScriptedRecognizer("hello", "merci")

	first, err := recognizer.Recognize(ctx, domain.AudioClip{})
	req.NoError(err)
	second, err := recognizer.Recognize(ctx, domain.AudioClip{})
	req.NoError(err)
	// Once exhausted, text clips read back and audio is silence
	third, err := recognizer.Recognize(ctx, domain.AudioClip{Data: []byte("typed words"), MimeType: "text/plain"})
	req.NoError(err)
	fourth, err := recognizer.Recognize(ctx, domain.AudioClip{Data: []byte("RIFF"), MimeType: "audio/wav"})
	req.NoError(err)

	req.Equal("hello", first)
	req.Equal("merci", second)
	req.Equal("typed words", third)
	req.Empty(fourth)
}

func TestDictionaryTranslator_Translate(t *testing.T) {
	req := require.New(t)
	translator := NewDictionaryTranslator(nil)

	known, err := translator.Translate(context.Background(), " Hello ", "fr")
	req.NoError(err)
	unknown, err := translator.Translate(context.Background(), "Unknown text.", "de")
	req.NoError(err)

	req.Equal("bonjour", known)
	req.Equal("[de] Unknown text.", unknown)
}

func TestDictionaryTranslator_Cancelled(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDictionaryTranslator(nil).Translate(ctx, "hello", "fr")

	req.ErrorIs(err, context.Canceled)
}

func TestSilentSynthesizer_Synthesize(t *testing.T) {
	req := require.New(t)

	artifact, err := NewSilentSynthesizer().Synthesize(context.Background(), "bonjour", "fr")
	req.NoError(err)
	req.Equal("audio/wav", artifact.MimeType)
	req.Equal("RIFF", string(artifact.Data[:4]))

	_, err = NewSilentSynthesizer().Synthesize(context.Background(), " ", "fr")
	req.Error(err)
}
