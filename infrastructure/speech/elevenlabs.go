package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"voice-relay/domain"

	"github.com/bytedance/sonic"
)

const elevenLabsURL = "https://api.elevenlabs.io"

type ElevenLabsSynthesizer struct {
	apiKey  string
	baseURL string
	voiceID string
	modelID string
	client  *http.Client
}

func NewElevenLabsSynthesizer(apiKey, baseURL, voiceID, modelID string, client *http.Client) *ElevenLabsSynthesizer {
	if baseURL == "" {
		baseURL = elevenLabsURL
	}
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &ElevenLabsSynthesizer{apiKey: apiKey, baseURL: baseURL, voiceID: voiceID, modelID: modelID, client: client}
}

type elevenLabsRequest struct {
	Text         string `json:"text"`
	ModelID      string `json:"model_id"`
	LanguageCode string `json:"language_code,omitempty"`
}

func (e *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text string, language domain.LanguageCode) (domain.AudioArtifact, error) {
	payload, err := sonic.Marshal(elevenLabsRequest{Text: text, ModelID: e.modelID, LanguageCode: string(language)})
	if err != nil {
		return domain.AudioArtifact{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/v1/text-to-speech/%s", e.baseURL, e.voiceID), bytes.NewReader(payload))
	if err != nil {
		return domain.AudioArtifact{}, err
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := e.client.Do(req)
	if err != nil {
		return domain.AudioArtifact{}, fmt.Errorf("elevenlabs request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.AudioArtifact{}, fmt.Errorf("read elevenlabs response: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return domain.AudioArtifact{}, fmt.Errorf("elevenlabs status %d: %s", resp.StatusCode, data)
	}
	if len(data) == 0 {
		return domain.AudioArtifact{}, fmt.Errorf("elevenlabs: empty audio")
	}
	return domain.AudioArtifact{Data: data, MimeType: "audio/mpeg", Language: language}, nil
}
