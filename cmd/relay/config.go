package main

import (
	"time"
	"voice-relay/infrastructure/speech"

	"github.com/sashabaranov/go-openai"
)

type Config struct {
	LogLevel       string        `env:"LOG_LEVEL,default=INFO"`
	Host           string        `env:"HOST,default=localhost"`
	Port           int           `env:"PORT,default=8080"`
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string        `env:"BLUGE_FILEPATH,required=true"`
	LimitEntries   *int          `env:"LIMIT_ENTRIES"`
	MetricInterval time.Duration `env:"METRIC_INTERVAL,default=10s"`
	CaptureTimeout time.Duration `env:"CAPTURE_TIMEOUT,default=30s"`
	// Idle conversations are dropped by the janitor
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT,default=30m"`
	JanitorInterval    time.Duration `env:"JANITOR_INTERVAL,default=1m"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	MaxAudioBytes  int64         `env:"MAX_AUDIO_BYTES,default=10485760"`
	RateLimit      int           `env:"RATE_LIMIT,default=120"`
	RateWindow     time.Duration `env:"RATE_WINDOW,default=1m"`
	AllowedOrigins string        `env:"ALLOWED_ORIGINS,default=*"`
	MinConfidence  float64       `env:"DETECTION_MIN_CONFIDENCE,default=0.2"`

	STTProvider         string `env:"STT_PROVIDER,default=stub"`
	TTSProvider         string `env:"TTS_PROVIDER,default=stub"`
	TranslationProvider string `env:"TRANSLATION_PROVIDER,default=stub"`

	OpenAIKey                string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL            string `env:"OPENAI_BASE_URL"`
	OpenAITranscriptionModel string `env:"OPENAI_TRANSCRIPTION_MODEL"`
	OpenAIChatModel          string `env:"OPENAI_CHAT_MODEL"`
	OpenAISpeechModel        string `env:"OPENAI_SPEECH_MODEL"`
	OpenAIVoice              string `env:"OPENAI_VOICE"`

	DeepgramKey     string `env:"DEEPGRAM_API_KEY"`
	DeepgramBaseURL string `env:"DEEPGRAM_BASE_URL"`
	DeepgramModel   string `env:"DEEPGRAM_MODEL"`

	ElevenLabsKey     string `env:"ELEVENLABS_API_KEY"`
	ElevenLabsBaseURL string `env:"ELEVENLABS_BASE_URL"`
	ElevenLabsVoiceID string `env:"ELEVENLABS_VOICE_ID"`
	ElevenLabsModelID string `env:"ELEVENLABS_MODEL_ID"`

	// Object storage is optional, an empty endpoint keeps audio inline.
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET,default=voice-relay"`
	S3Region    string `env:"S3_REGION"`
	S3Secure    bool   `env:"S3_SECURE,default=false"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`
}

func (c Config) providers() speech.ProviderConfig {
	return speech.ProviderConfig{
		STT:         c.STTProvider,
		TTS:         c.TTSProvider,
		Translation: c.TranslationProvider,
		OpenAI: speech.OpenAIConfig{
			APIKey:             c.OpenAIKey,
			BaseURL:            c.OpenAIBaseURL,
			TranscriptionModel: c.OpenAITranscriptionModel,
			ChatModel:          c.OpenAIChatModel,
			SpeechModel:        openai.SpeechModel(c.OpenAISpeechModel),
			Voice:              openai.SpeechVoice(c.OpenAIVoice),
		},
		DeepgramKey:       c.DeepgramKey,
		DeepgramBaseURL:   c.DeepgramBaseURL,
		DeepgramModel:     c.DeepgramModel,
		ElevenLabsKey:     c.ElevenLabsKey,
		ElevenLabsBaseURL: c.ElevenLabsBaseURL,
		ElevenLabsVoiceID: c.ElevenLabsVoiceID,
		ElevenLabsModelID: c.ElevenLabsModelID,
	}
}
