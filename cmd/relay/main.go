package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
	"voice-relay/delivery"
	"voice-relay/detection"
	"voice-relay/domain"
	"voice-relay/export"
	"voice-relay/infrastructure/audio"
	"voice-relay/infrastructure/objectstore"
	"voice-relay/infrastructure/speech"
	"voice-relay/infrastructure/storage"
	"voice-relay/observability"
	"voice-relay/runtime"
	"voice-relay/runtime/workers"
	"voice-relay/sentiment"
	"voice-relay/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the server lifecycle so deferred cleanup always executes.
func run() error {
	// 1. Configuration & Logger
	// A missing .env file is fine, the environment may already be set.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	languages := domain.NewLanguageRegistry(domain.DefaultLanguages)

	// 2. Archives (BadgerDB) and search index (Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing search index...")
		_ = writer.Close()
	}()

	transcripts := storage.NewTranscriptRepository(db, log, config.LimitEntries)
	history := storage.NewHistoryRepository(db, log, config.LimitEntries)
	index := storage.NewSearchIndex(writer, log)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Speech providers and optional object storage
	p, err := speech.SelectProviders(config.providers(), languages)
	if err != nil {
		return err
	}
	log.Info("Speech providers selected",
		"stt", config.STTProvider, "translation", config.TranslationProvider, "tts", config.TTSProvider)

	var artifacts *objectstore.ArtifactStore
	if config.S3Endpoint != "" {
		artifacts, err = objectstore.NewArtifactStore(objectstore.Config{
			Endpoint:  config.S3Endpoint,
			AccessKey: config.S3AccessKey,
			SecretKey: config.S3SecretKey,
			Bucket:    config.S3Bucket,
			Region:    config.S3Region,
			Secure:    config.S3Secure,
			PublicURL: config.S3PublicURL,
		})
		if err != nil {
			return err
		}
		if err := artifacts.EnsureBucket(ctx); err != nil {
			return err
		}
	}

	// 5. Services
	sessionOpts := []services.ConversationOption{
		services.WithArchive(transcripts),
		services.WithIndexer(index),
		services.WithCaptureTimeout(config.CaptureTimeout),
	}
	if artifacts != nil {
		sessionOpts = append(sessionOpts, services.WithArtifactStore(artifacts))
	}
	sessions := runtime.NewRegistry(func(id string, langA, langB domain.LanguageCode) (*services.ConversationService, error) {
		return services.NewConversationService(id, log, languages, p.Recognizer, p.Translator, p.Synthesizer, langA, langB, sessionOpts...)
	})

	analyzer, err := sentiment.NewDefaultAnalyzer()
	if err != nil {
		return fmt.Errorf("sentiment lexicon failed: %w", err)
	}
	deps := services.TranslateDependencies{
		Recognizer:  p.Recognizer,
		Translator:  p.Translator,
		Synthesizer: p.Synthesizer,
		Detector:    detection.NewDetector(config.MinConfidence),
		Sentiment:   analyzer,
		Archive:     history,
		Indexer:     index,
	}
	if artifacts != nil {
		deps.Artifacts = artifacts
	}
	translator := services.NewTranslateService(log, languages, deps)
	exports := services.NewExportService(log, export.NewPDFExporter(languages))

	monitor := observability.NewMonitoringManager(log, sessions.Len)

	// 6. Background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewMonitoringWorker(monitor, config.MetricInterval),
		workers.NewSessionJanitor(log, sessions, config.SessionIdleTimeout, config.JanitorInterval),
	)
	supervised := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervised)
	}()

	// 7. HTTP Server Setup
	server := delivery.NewServer(log, delivery.Config{
		MaxAudioBytes:  config.MaxAudioBytes,
		RateLimit:      config.RateLimit,
		RateWindow:     config.RateWindow,
		AllowedOrigins: strings.Split(config.AllowedOrigins, ","),
	}, languages, sessions, translator, exports, index, audio.NewNormalizer(p.Offline), monitor)

	address := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	httpServer := &http.Server{
		Addr:              address,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	if err := awaitStop(ctx, stop, errChan, supervised); err != nil {
		return err
	}
	log.Info("Shutting down gracefully...")

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "err", err)
	}
	// ctx is done, the supervisor is already stopping its workers
	<-supervised
	log.Info("Program stopped cleanly")
	return nil
}

// awaitStop blocks until ctx is done or the server fails.
// On failure it cancels the workers and waits for them, so deferred stores close last.
func awaitStop(ctx context.Context, stop context.CancelFunc, errs <-chan error, supervised <-chan struct{}) error {
	select {
	case <-ctx.Done():
		return nil
	case err := <-errs:
		stop()
		<-supervised
		return err
	}
}
