package speech

import (
	"fmt"
	"net/http"
	"strings"
	"time"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/errors"
)

// ProviderConfig names one provider per port plus the credentials they need.
type ProviderConfig struct {
	STT         string
	TTS         string
	Translation string
	HTTPTimeout time.Duration

	OpenAI OpenAIConfig

	DeepgramKey     string
	DeepgramBaseURL string
	DeepgramModel   string

	ElevenLabsKey     string
	ElevenLabsBaseURL string
	ElevenLabsVoiceID string
	ElevenLabsModelID string
}

// Providers holds the three speech ports picked from configuration.
type Providers struct {
	Recognizer  contract.Recognizer
	Translator  contract.Translator
	Synthesizer contract.Synthesizer
	// Offline is true when recognition is stubbed and text bodies must be accepted.
	Offline bool
}

// SelectProviders builds the adapters named in cfg. Ports served by OpenAI share one client.
func SelectProviders(cfg ProviderConfig, languages domain.LanguageRegistry) (Providers, error) {
	var p Providers
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 60 * time.Second
	}
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var ai *OpenAI
	openAI := func() *OpenAI {
		if ai == nil {
			ai = NewOpenAI(cfg.OpenAI, languages)
		}
		return ai
	}

	switch strings.ToLower(cfg.STT) {
	case "openai":
		p.Recognizer = openAI()
	case "deepgram":
		p.Recognizer = NewDeepgramRecognizer(cfg.DeepgramKey, cfg.DeepgramBaseURL, cfg.DeepgramModel, httpClient)
	case "stub":
		p.Recognizer = NewScriptedRecognizer()
		p.Offline = true
	default:
		return p, fmt.Errorf("%w: stt %q", errors.ErrProviderNotSupported, cfg.STT)
	}

	switch strings.ToLower(cfg.Translation) {
	case "openai":
		p.Translator = openAI()
	case "stub":
		p.Translator = NewDictionaryTranslator(nil)
	default:
		return p, fmt.Errorf("%w: translation %q", errors.ErrProviderNotSupported, cfg.Translation)
	}

	switch strings.ToLower(cfg.TTS) {
	case "openai":
		p.Synthesizer = openAI()
	case "elevenlabs":
		p.Synthesizer = NewElevenLabsSynthesizer(cfg.ElevenLabsKey, cfg.ElevenLabsBaseURL,
			cfg.ElevenLabsVoiceID, cfg.ElevenLabsModelID, httpClient)
	case "stub":
		p.Synthesizer = NewSilentSynthesizer()
	default:
		return p, fmt.Errorf("%w: tts %q", errors.ErrProviderNotSupported, cfg.TTS)
	}
	return p, nil
}
