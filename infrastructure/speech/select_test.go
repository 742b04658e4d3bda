package speech

import (
	"testing"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/stretchr/testify/require"
)

func TestSelectProviders(t *testing.T) {
	languages := domain.NewLanguageRegistry(domain.DefaultLanguages)

	t.Run("should wire the stubs offline", func(t *testing.T) {
		req := require.New(t)
		p, err := SelectProviders(ProviderConfig{STT: "stub", TTS: "stub", Translation: "stub"}, languages)
		req.NoError(err)
		req.True(p.Offline)
		req.IsType(&ScriptedRecognizer{}, p.Recognizer)
		req.IsType(DictionaryTranslator{}, p.Translator)
		req.IsType(SilentSynthesizer{}, p.Synthesizer)
	})

	t.Run("should share one OpenAI client across ports", func(t *testing.T) {
		req := require.New(t)
		p, err := SelectProviders(ProviderConfig{STT: "OpenAI", TTS: "openai", Translation: "openai"}, languages)
		req.NoError(err)
		req.False(p.Offline)
		req.Same(p.Recognizer, p.Synthesizer)
	})

	t.Run("should mix providers", func(t *testing.T) {
		req := require.New(t)
		p, err := SelectProviders(ProviderConfig{STT: "deepgram", TTS: "elevenlabs", Translation: "stub"}, languages)
		req.NoError(err)
		req.IsType(&DeepgramRecognizer{}, p.Recognizer)
		req.IsType(&ElevenLabsSynthesizer{}, p.Synthesizer)
	})

	testCases := []struct {
		description string
		config      ProviderConfig
	}{
		{description: "unknown stt", config: ProviderConfig{STT: "vosk", TTS: "stub", Translation: "stub"}},
		{description: "unknown tts", config: ProviderConfig{STT: "stub", TTS: "polly", Translation: "stub"}},
		{description: "unknown translation", config: ProviderConfig{STT: "stub", TTS: "stub", Translation: "deepl"}},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := SelectProviders(tc.config, languages)
			require.ErrorIs(t, err, errors.ErrProviderNotSupported)
		})
	}
}
