package delivery

import (
	"time"
	"voice-relay/domain"

	"github.com/samber/lo"
)

type LanguageResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type EntryResponse struct {
	ID             string `json:"id"`
	Speaker        string `json:"speaker"`
	Spoken         string `json:"spoken"`
	Translated     string `json:"translated"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	At             string `json:"at"`
}

type StateResponse struct {
	ID         string            `json:"id"`
	Turn       string            `json:"turn"`
	Languages  map[string]string `json:"languages"`
	Transcript []EntryResponse   `json:"transcript"`
}

// AudioResponse carries the audio inline when it could not be uploaded.
type AudioResponse struct {
	MimeType string `json:"mimeType"`
	Language string `json:"language"`
	URL      string `json:"url,omitempty"`
	Data     []byte `json:"data,omitempty"`
}

type RelayResponse struct {
	Speaker    string         `json:"speaker"`
	Spoken     string         `json:"spoken"`
	Translated string         `json:"translated"`
	Audio      *AudioResponse `json:"audio,omitempty"`
	AudioError string         `json:"audioError,omitempty"`
	State      StateResponse  `json:"state"`
}

type HistoryResponse struct {
	ID               string  `json:"id"`
	Input            string  `json:"input"`
	Translated       string  `json:"translated"`
	DetectedLanguage string  `json:"detectedLanguage"`
	TargetLanguage   string  `json:"targetLanguage"`
	Sentiment        string  `json:"sentiment"`
	SentimentScore   float64 `json:"sentimentScore"`
	At               string  `json:"at"`
}

type TranslationResponse struct {
	Entry      HistoryResponse `json:"entry"`
	Audio      *AudioResponse  `json:"audio,omitempty"`
	AudioError string          `json:"audioError,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toStateResponse(id string, state domain.ConversationState) StateResponse {
	return StateResponse{
		ID:   id,
		Turn: state.Turn.String(),
		Languages: lo.MapEntries(state.Languages, func(p domain.ParticipantID, code domain.LanguageCode) (string, string) {
			return p.String(), string(code)
		}),
		Transcript: lo.Map(state.Transcript, func(entry domain.TranscriptEntry, _ int) EntryResponse {
			return toEntryResponse(entry)
		}),
	}
}

func toEntryResponse(entry domain.TranscriptEntry) EntryResponse {
	return EntryResponse{
		ID:             entry.ID.String(),
		Speaker:        entry.Speaker.String(),
		Spoken:         entry.Spoken,
		Translated:     entry.Translated,
		SourceLanguage: string(entry.SourceLanguage),
		TargetLanguage: string(entry.TargetLanguage),
		At:             entry.At.Format(time.RFC3339Nano),
	}
}

func toHistoryResponse(entry domain.HistoryEntry) HistoryResponse {
	return HistoryResponse{
		ID:               entry.ID.String(),
		Input:            entry.Input,
		Translated:       entry.Translated,
		DetectedLanguage: string(entry.DetectedLanguage),
		TargetLanguage:   string(entry.TargetLanguage),
		Sentiment:        string(entry.Sentiment.Polarity),
		SentimentScore:   entry.Sentiment.Score,
		At:               entry.At.Format(time.RFC3339Nano),
	}
}

// toAudioResponse drops the inline bytes once the artifact has a download URL.
func toAudioResponse(artifact *domain.AudioArtifact) *AudioResponse {
	if artifact == nil {
		return nil
	}
	audio := &AudioResponse{MimeType: artifact.MimeType, Language: string(artifact.Language), URL: artifact.URL}
	if artifact.URL == "" {
		audio.Data = artifact.Data
	}
	return audio
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
