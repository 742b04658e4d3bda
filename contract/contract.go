//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"io"
	"reflect"
	"voice-relay/domain"
)

// Recognizer turns captured speech into text.
// An empty result means nothing intelligible was heard.
type Recognizer interface {
	Recognize(ctx context.Context, clip domain.AudioClip) (string, error)
}

// Translator converts text into the target language.
type Translator interface {
	Translate(ctx context.Context, text string, target domain.LanguageCode) (string, error)
}

// Synthesizer renders text as speech in the given language.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, language domain.LanguageCode) (domain.AudioArtifact, error)
}

type LanguageDetector interface {
	Detect(text string) (domain.Detection, error)
}

type SentimentAnalyzer interface {
	Analyze(text string) domain.Sentiment
}

// TranscriptArchive keeps committed transcript entries beyond the session lifetime.
type TranscriptArchive interface {
	StoreEntry(sessionID string, entry domain.TranscriptEntry) error
	ListEntries(sessionID string) ([]domain.TranscriptEntry, error)
}

type HistoryArchive interface {
	StoreHistory(entry domain.HistoryEntry) error
	ListHistory() ([]domain.HistoryEntry, error)
}

// ArtifactStore publishes synthesized audio and returns where it can be downloaded.
type ArtifactStore interface {
	Put(ctx context.Context, key string, artifact domain.AudioArtifact) (string, error)
}

type Exporter interface {
	History(w io.Writer, entries []domain.HistoryEntry) error
	Transcript(w io.Writer, entries []domain.TranscriptEntry) error
}

// Indexer makes archived texts searchable.
type Indexer interface {
	IndexTranscript(sessionID string, entry domain.TranscriptEntry) error
	IndexHistory(entry domain.HistoryEntry) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker is a background loop. It does not protect itself, the supervisor restarts it.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName returns the type name of the worker for logging.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
