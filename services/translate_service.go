package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/google/uuid"
)

type ITranslateService interface {
	Translate(ctx context.Context, text string, target domain.LanguageCode) (domain.TranslationResult, error)
	TranslateSpeech(ctx context.Context, clip domain.AudioClip, target domain.LanguageCode) (domain.TranslationResult, error)
	History() []domain.HistoryEntry
	ClearHistory()
}

// TranslateService is the single-shot path: detect, score, translate, speak, remember.
// Its only state is the flat history list.
type TranslateService struct {
	mu          sync.Mutex
	log         *slog.Logger
	registry    domain.LanguageRegistry
	recognizer  contract.Recognizer
	translator  contract.Translator
	synthesizer contract.Synthesizer
	detector    contract.LanguageDetector
	sentiment   contract.SentimentAnalyzer
	archive     contract.HistoryArchive
	indexer     contract.Indexer
	artifacts   contract.ArtifactStore
	history     domain.History
	now         func() time.Time
}

type TranslateDependencies struct {
	Recognizer  contract.Recognizer
	Translator  contract.Translator
	Synthesizer contract.Synthesizer
	Detector    contract.LanguageDetector
	Sentiment   contract.SentimentAnalyzer
	// Optional
	Archive   contract.HistoryArchive
	Indexer   contract.Indexer
	Artifacts contract.ArtifactStore
}

func NewTranslateService(log *slog.Logger, registry domain.LanguageRegistry, deps TranslateDependencies) *TranslateService {
	return &TranslateService{
		log:         log,
		registry:    registry,
		recognizer:  deps.Recognizer,
		translator:  deps.Translator,
		synthesizer: deps.Synthesizer,
		detector:    deps.Detector,
		sentiment:   deps.Sentiment,
		archive:     deps.Archive,
		indexer:     deps.Indexer,
		artifacts:   deps.Artifacts,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Translate detects the input language, scores its sentiment, translates it and speaks the result.
// Detection and sentiment are informational and never change where the text is sent.
func (s *TranslateService) Translate(ctx context.Context, text string, target domain.LanguageCode) (domain.TranslationResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.TranslationResult{}, errors.ErrEmptyInput
	}
	if err := checkLanguages(s.registry, target); err != nil {
		return domain.TranslationResult{}, err
	}

	detected := domain.UndeterminedLanguage
	if detection, err := s.detector.Detect(text); err != nil {
		s.log.Debug("Language not detected", "err", err)
	} else {
		detected = detection.Language
	}
	sentiment := s.sentiment.Analyze(text)

	translated, err := translate(ctx, s.translator, text, target)
	if err != nil {
		s.log.Error("Translation failed", "target", target, "err", err)
		return domain.TranslationResult{}, err
	}

	id := uuid.New()
	audio, audioErr := synthesize(ctx, s.synthesizer, s.artifacts, translated, target, fmt.Sprintf("translations/%s", id))
	if audioErr != nil {
		s.log.Warn("Translation recorded without audio", "err", audioErr)
	}

	entry := domain.HistoryEntry{
		ID:               id,
		Input:            text,
		Translated:       translated,
		DetectedLanguage: detected,
		TargetLanguage:   target,
		Sentiment:        sentiment,
		At:               s.now(),
	}
	s.mu.Lock()
	s.history.Append(entry)
	s.mu.Unlock()
	s.keep(entry)

	s.log.Debug("Translation recorded", "detected", detected, "target", target, "sentiment", sentiment.Polarity)
	return domain.TranslationResult{Entry: entry, Audio: audio, AudioErr: audioErr}, nil
}

// TranslateSpeech recognizes a one-off capture then follows the text path.
func (s *TranslateService) TranslateSpeech(ctx context.Context, clip domain.AudioClip, target domain.LanguageCode) (domain.TranslationResult, error) {
	text, err := recognize(ctx, s.recognizer, clip)
	if err != nil {
		s.log.Error("Could not recognize speech", "err", err)
		return domain.TranslationResult{}, err
	}
	return s.Translate(ctx, text, target)
}

func (s *TranslateService) History() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Entries()
}

func (s *TranslateService) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Clear()
}

func (s *TranslateService) keep(entry domain.HistoryEntry) {
	if s.archive != nil {
		if err := s.archive.StoreHistory(entry); err != nil {
			s.log.Warn("History entry not archived", "entry", entry.ID, "err", err)
		}
	}
	if s.indexer != nil {
		if err := s.indexer.IndexHistory(entry); err != nil {
			s.log.Warn("History entry not indexed", "entry", entry.ID, "err", err)
		}
	}
}
