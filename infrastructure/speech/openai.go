package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"voice-relay/domain"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sashabaranov/go-openai"
)

type OpenAIConfig struct {
	APIKey string
	// BaseURL overrides the public endpoint, empty keeps the default.
	BaseURL            string
	TranscriptionModel string
	ChatModel          string
	SpeechModel        openai.SpeechModel
	Voice              openai.SpeechVoice
}

// OpenAI serves the three speech ports: Whisper for recognition,
// chat completion for translation and the speech endpoint for synthesis.
type OpenAI struct {
	client    *openai.Client
	cfg       OpenAIConfig
	languages domain.LanguageRegistry
}

func NewOpenAI(cfg OpenAIConfig, languages domain.LanguageRegistry) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.TranscriptionModel == "" {
		cfg.TranscriptionModel = openai.Whisper1
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = openai.GPT4oMini
	}
	if cfg.SpeechModel == "" {
		cfg.SpeechModel = openai.TTSModel1
	}
	if cfg.Voice == "" {
		cfg.Voice = openai.VoiceAlloy
	}
	return &OpenAI{client: openai.NewClientWithConfig(clientCfg), cfg: cfg, languages: languages}
}

func (o *OpenAI) Recognize(ctx context.Context, clip domain.AudioClip) (string, error) {
	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model: o.cfg.TranscriptionModel,
		// The file name only tells the API which container to expect
		FilePath: "speech" + extensionOf(clip),
		Reader:   bytes.NewReader(clip.Data),
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}
	return resp.Text, nil
}

func (o *OpenAI) Translate(ctx context.Context, text string, target domain.LanguageCode) (string, error) {
	name := o.languages.NameOf(target)
	if name == "" {
		name = string(target)
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.cfg.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("You translate spoken sentences into %s. "+
					"Reply with the translation only, without quotes or comments.", name),
			},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("openai translation: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai translation: no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (o *OpenAI) Synthesize(ctx context.Context, text string, language domain.LanguageCode) (domain.AudioArtifact, error) {
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          o.cfg.SpeechModel,
		Input:          text,
		Voice:          o.cfg.Voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return domain.AudioArtifact{}, fmt.Errorf("openai speech: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return domain.AudioArtifact{}, fmt.Errorf("read openai speech: %w", err)
	}
	if len(data) == 0 {
		return domain.AudioArtifact{}, fmt.Errorf("openai speech: empty audio")
	}
	return domain.AudioArtifact{Data: data, MimeType: "audio/mpeg", Language: language}, nil
}

// extensionOf prefers the declared MIME type and falls back to sniffing the payload.
func extensionOf(clip domain.AudioClip) string {
	if clip.MimeType != "" {
		if m := mimetype.Lookup(clip.MimeType); m != nil && m.Extension() != "" {
			return m.Extension()
		}
	}
	if ext := mimetype.Detect(clip.Data).Extension(); ext != "" {
		return ext
	}
	return ".wav"
}
