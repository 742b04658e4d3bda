package main

import (
	"time"
	"voice-relay/infrastructure/speech"

	"github.com/kelseyhightower/envconfig"
	"github.com/sashabaranov/go-openai"
)

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"WARN"`
	// CONSOLE_COLOURS enables coloured turns
	Colours bool `envconfig:"CONSOLE_COLOURS" default:"true"`
	// CONSOLE_OUT_DIR receives the synthesized audio, empty skips writing it
	OutDir         string        `envconfig:"CONSOLE_OUT_DIR"`
	CaptureTimeout time.Duration `envconfig:"CAPTURE_TIMEOUT" default:"30s"`

	STTProvider         string `envconfig:"STT_PROVIDER" default:"stub"`
	TTSProvider         string `envconfig:"TTS_PROVIDER" default:"stub"`
	TranslationProvider string `envconfig:"TRANSLATION_PROVIDER" default:"stub"`

	OpenAIKey     string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
	OpenAIVoice   string `envconfig:"OPENAI_VOICE"`

	DeepgramKey       string `envconfig:"DEEPGRAM_API_KEY"`
	ElevenLabsKey     string `envconfig:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string `envconfig:"ELEVENLABS_VOICE_ID"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}

func (c Config) providers() speech.ProviderConfig {
	return speech.ProviderConfig{
		STT:         c.STTProvider,
		TTS:         c.TTSProvider,
		Translation: c.TranslationProvider,
		OpenAI: speech.OpenAIConfig{
			APIKey:  c.OpenAIKey,
			BaseURL: c.OpenAIBaseURL,
			Voice:   openai.SpeechVoice(c.OpenAIVoice),
		},
		DeepgramKey:       c.DeepgramKey,
		ElevenLabsKey:     c.ElevenLabsKey,
		ElevenLabsVoiceID: c.ElevenLabsVoiceID,
	}
}
