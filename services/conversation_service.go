package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/google/uuid"
)

const DefaultCaptureTimeout = 30 * time.Second

type IConversationService interface {
	Configure(langA, langB domain.LanguageCode) error
	RelayStep(ctx context.Context, clip domain.AudioClip) (domain.RelayResult, error)
	Reset()
	State() domain.ConversationState
	ID() string
}

// ConversationService owns one conversation state and is the only path allowed to mutate it.
// Every operation holds the same lock, so at most one relay step is in flight.
type ConversationService struct {
	mu             sync.Mutex
	id             string
	log            *slog.Logger
	state          *domain.ConversationState
	registry       domain.LanguageRegistry
	recognizer     contract.Recognizer
	translator     contract.Translator
	synthesizer    contract.Synthesizer
	archive        contract.TranscriptArchive
	indexer        contract.Indexer
	artifacts      contract.ArtifactStore
	captureTimeout time.Duration
	now            func() time.Time
	// lastActive is read by the janitor without waiting for an in-flight step.
	lastActive atomic.Int64
}

type ConversationOption func(*ConversationService)

// WithArchive forwards every committed entry to the archive.
func WithArchive(archive contract.TranscriptArchive) ConversationOption {
	return func(s *ConversationService) { s.archive = archive }
}

func WithIndexer(indexer contract.Indexer) ConversationOption {
	return func(s *ConversationService) { s.indexer = indexer }
}

// WithArtifactStore uploads synthesized audio so that results carry a download URL.
func WithArtifactStore(store contract.ArtifactStore) ConversationOption {
	return func(s *ConversationService) { s.artifacts = store }
}

func WithCaptureTimeout(timeout time.Duration) ConversationOption {
	return func(s *ConversationService) { s.captureTimeout = timeout }
}

func WithClock(now func() time.Time) ConversationOption {
	return func(s *ConversationService) { s.now = now }
}

func NewConversationService(
	id string,
	log *slog.Logger,
	registry domain.LanguageRegistry,
	recognizer contract.Recognizer,
	translator contract.Translator,
	synthesizer contract.Synthesizer,
	langA, langB domain.LanguageCode,
	opts ...ConversationOption,
) (*ConversationService, error) {
	if err := checkLanguages(registry, langA, langB); err != nil {
		return nil, err
	}
	s := &ConversationService{
		id:             id,
		log:            log.With("session", id),
		state:          domain.NewConversationState(langA, langB),
		registry:       registry,
		recognizer:     recognizer,
		translator:     translator,
		synthesizer:    synthesizer,
		captureTimeout: DefaultCaptureTimeout,
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.touch()
	return s, nil
}

func (s *ConversationService) ID() string {
	return s.id
}

// Configure sets both participants' languages. Turn and transcript are left untouched:
// callers starting a new conversation must also call Reset.
func (s *ConversationService) Configure(langA, langB domain.LanguageCode) error {
	if err := checkLanguages(s.registry, langA, langB); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetLanguages(langA, langB)
	s.touch()
	s.log.Debug("Languages configured", "A", langA, "B", langB)
	return nil
}

// RelayStep runs capture, translation and synthesis for the active speaker.
// Recognition and translation failures leave the state as it was.
// A synthesis failure still commits the entry and is reported through RelayResult.AudioErr.
func (s *ConversationService) RelayStep(ctx context.Context, clip domain.AudioClip) (domain.RelayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	defer s.touch()

	speaker, listener := s.state.Speaker(), s.state.Listener()
	log := s.log.With("speaker", speaker.ID, "target", listener.Language)

	spoken, err := s.recognize(ctx, clip)
	if err != nil {
		log.Error("Relay step failed", "stage", "recognition", "err", err)
		return domain.RelayResult{}, err
	}

	translated, err := translate(ctx, s.translator, spoken, listener.Language)
	if err != nil {
		log.Error("Relay step failed", "stage", "translation", "err", err)
		return domain.RelayResult{}, err
	}

	// Artifacts are keyed by entry id so a reset never reuses a published key
	entryID := uuid.New()
	audio, audioErr := synthesize(ctx, s.synthesizer, s.artifacts, translated, listener.Language,
		fmt.Sprintf("conversations/%s/%s-%s", s.id, entryID, speaker.ID))
	if audioErr != nil {
		log.Warn("Translation recorded without audio", "err", audioErr)
	}

	entry := s.state.CommitAs(entryID, spoken, translated, s.now())
	log.Debug("Relay step committed", "entry", entry.ID, "next", s.state.Turn)

	s.keep(entry)

	return domain.RelayResult{
		Speaker:    speaker.ID,
		Spoken:     spoken,
		Translated: translated,
		Audio:      audio,
		AudioErr:   audioErr,
		Entry:      entry,
		State:      s.state.Snapshot(),
	}, nil
}

// Reset empties the transcript and gives the turn back to A. Calling it twice is harmless.
func (s *ConversationService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Reset()
	s.touch()
	s.log.Debug("Conversation reset")
}

// LastActive is the time of the latest operation that touched the conversation.
func (s *ConversationService) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

func (s *ConversationService) touch() {
	s.lastActive.Store(s.now().UnixNano())
}

// State returns a read-only snapshot for rendering.
func (s *ConversationService) State() domain.ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Snapshot()
}

func (s *ConversationService) recognize(ctx context.Context, clip domain.AudioClip) (string, error) {
	captureCtx := ctx
	if s.captureTimeout > 0 {
		var cancel context.CancelFunc
		captureCtx, cancel = context.WithTimeout(ctx, s.captureTimeout)
		defer cancel()
	}
	return recognize(captureCtx, s.recognizer, clip)
}

// keep archives and indexes a committed entry. Failures are logged, the step is already committed.
func (s *ConversationService) keep(entry domain.TranscriptEntry) {
	if s.archive != nil {
		if err := s.archive.StoreEntry(s.id, entry); err != nil {
			s.log.Warn("Transcript entry not archived", "entry", entry.ID, "err", err)
		}
	}
	if s.indexer != nil {
		if err := s.indexer.IndexTranscript(s.id, entry); err != nil {
			s.log.Warn("Transcript entry not indexed", "entry", entry.ID, "err", err)
		}
	}
}

func checkLanguages(registry domain.LanguageRegistry, codes ...domain.LanguageCode) error {
	for _, code := range codes {
		if !registry.Supports(code) {
			return fmt.Errorf("%w: code %q", errors.ErrUnknownLanguage, code)
		}
	}
	return nil
}

// recognize treats empty or blank text as a recognition failure.
func recognize(ctx context.Context, recognizer contract.Recognizer, clip domain.AudioClip) (string, error) {
	text, err := recognizer.Recognize(ctx, clip)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrRecognitionFailed, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: no speech recognized", errors.ErrRecognitionFailed)
	}
	return text, nil
}

func translate(ctx context.Context, translator contract.Translator, text string, target domain.LanguageCode) (string, error) {
	translated, err := translator.Translate(ctx, text, target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrTranslationFailed, err)
	}
	if strings.TrimSpace(translated) == "" {
		return "", fmt.Errorf("%w: empty translation into %s", errors.ErrTranslationFailed, target)
	}
	return translated, nil
}

// synthesize renders audio and, when a store is configured, publishes it under key.
// The returned error always wraps ErrSynthesisFailed or ErrUploadFailed.
func synthesize(ctx context.Context, synthesizer contract.Synthesizer, store contract.ArtifactStore,
	text string, language domain.LanguageCode, key string) (*domain.AudioArtifact, error) {
	artifact, err := synthesizer.Synthesize(ctx, text, language)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSynthesisFailed, err)
	}
	if store == nil {
		return &artifact, nil
	}
	url, err := store.Put(ctx, key, artifact)
	if err != nil {
		return &artifact, fmt.Errorf("%w: %v", errors.ErrUploadFailed, err)
	}
	artifact.URL = url
	return &artifact, nil
}
