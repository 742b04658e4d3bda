package storage

import (
	"time"
	"voice-relay/domain"

	"github.com/google/uuid"
)

// transcriptRecord is the on-disk shape of a transcript entry.
type transcriptRecord struct {
	ID             string `json:"id"`
	Session        string `json:"session"`
	Speaker        string `json:"speaker"`
	Spoken         string `json:"spoken"`
	Translated     string `json:"translated"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	At             int64  `json:"at"`
}

type historyRecord struct {
	ID               string  `json:"id"`
	Input            string  `json:"input"`
	Translated       string  `json:"translated"`
	DetectedLanguage string  `json:"detected_language"`
	TargetLanguage   string  `json:"target_language"`
	SentimentScore   float64 `json:"sentiment_score"`
	At               int64   `json:"at"`
}

func fromTranscriptEntry(sessionID string, entry domain.TranscriptEntry) transcriptRecord {
	return transcriptRecord{
		ID:             entry.ID.String(),
		Session:        sessionID,
		Speaker:        entry.Speaker.String(),
		Spoken:         entry.Spoken,
		Translated:     entry.Translated,
		SourceLanguage: string(entry.SourceLanguage),
		TargetLanguage: string(entry.TargetLanguage),
		At:             entry.At.UnixNano(),
	}
}

func toTranscriptEntry(record transcriptRecord) (domain.TranscriptEntry, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.TranscriptEntry{}, err
	}
	return domain.TranscriptEntry{
		ID:             parsedID,
		Speaker:        domain.ParticipantID(record.Speaker),
		Spoken:         record.Spoken,
		Translated:     record.Translated,
		SourceLanguage: domain.LanguageCode(record.SourceLanguage),
		TargetLanguage: domain.LanguageCode(record.TargetLanguage),
		At:             time.Unix(0, record.At).UTC(),
	}, nil
}

func fromHistoryEntry(entry domain.HistoryEntry) historyRecord {
	return historyRecord{
		ID:               entry.ID.String(),
		Input:            entry.Input,
		Translated:       entry.Translated,
		DetectedLanguage: string(entry.DetectedLanguage),
		TargetLanguage:   string(entry.TargetLanguage),
		SentimentScore:   entry.Sentiment.Score,
		At:               entry.At.UnixNano(),
	}
}

func toHistoryEntry(record historyRecord) (domain.HistoryEntry, error) {
	parsedID, err := uuid.Parse(record.ID)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	return domain.HistoryEntry{
		ID:               parsedID,
		Input:            record.Input,
		Translated:       record.Translated,
		DetectedLanguage: domain.LanguageCode(record.DetectedLanguage),
		TargetLanguage:   domain.LanguageCode(record.TargetLanguage),
		Sentiment:        domain.NewSentiment(record.SentimentScore),
		At:               time.Unix(0, record.At).UTC(),
	}, nil
}
