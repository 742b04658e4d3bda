package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"voice-relay/domain"

	"github.com/bytedance/sonic"
)

const deepgramURL = "https://api.deepgram.com"

type DeepgramRecognizer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewDeepgramRecognizer(apiKey, baseURL, model string, client *http.Client) *DeepgramRecognizer {
	if baseURL == "" {
		baseURL = deepgramURL
	}
	if model == "" {
		model = "nova-2"
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &DeepgramRecognizer{apiKey: apiKey, baseURL: baseURL, model: model, client: client}
}

type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

// Recognize posts the whole clip to the prerecorded endpoint and keeps the best alternative.
// No alternative at all is reported as empty text.
func (d *DeepgramRecognizer) Recognize(ctx context.Context, clip domain.AudioClip) (string, error) {
	query := url.Values{}
	query.Set("model", d.model)
	query.Set("smart_format", "true")
	query.Set("detect_language", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		d.baseURL+"/v1/listen?"+query.Encode(), bytes.NewReader(clip.Data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Token "+d.apiKey)
	contentType := clip.MimeType
	if contentType == "" {
		contentType = "audio/wav"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepgram request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read deepgram response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepgram status %d: %s", resp.StatusCode, body)
	}

	var parsed deepgramResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode deepgram: %w", err)
	}
	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", nil
	}
	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}
