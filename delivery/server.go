package delivery

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"voice-relay/domain"
	"voice-relay/infrastructure/audio"
	"voice-relay/infrastructure/storage"
	"voice-relay/observability"
	"voice-relay/runtime"
	"voice-relay/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gorilla/websocket"
)

const DefaultMaxAudioBytes = 10 << 20

// Searcher finds archived texts.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]storage.SearchHit, error)
}

type Config struct {
	MaxAudioBytes  int64
	RateLimit      int
	RateWindow     time.Duration
	AllowedOrigins []string
}

// Server exposes conversations and single-shot translations over HTTP and websockets.
type Server struct {
	log        *slog.Logger
	cfg        Config
	languages  domain.LanguageRegistry
	sessions   *runtime.Registry
	translate  services.ITranslateService
	exports    *services.ExportService
	search     Searcher
	normalizer audio.Normalizer
	monitor    *observability.MonitoringManager
	upgrader   websocket.Upgrader
}

func NewServer(
	log *slog.Logger,
	cfg Config,
	languages domain.LanguageRegistry,
	sessions *runtime.Registry,
	translate services.ITranslateService,
	exports *services.ExportService,
	search Searcher,
	normalizer audio.Normalizer,
	monitor *observability.MonitoringManager,
) *Server {
	if cfg.MaxAudioBytes <= 0 {
		cfg.MaxAudioBytes = DefaultMaxAudioBytes
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	return &Server{
		log:        log,
		cfg:        cfg,
		languages:  languages,
		sessions:   sessions,
		translate:  translate,
		exports:    exports,
		search:     search,
		normalizer: normalizer,
		monitor:    monitor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	if s.cfg.RateLimit > 0 {
		r.Use(httprate.LimitByIP(s.cfg.RateLimit, s.cfg.RateWindow))
	}

	r.Get("/health", s.Health)
	r.Get("/languages", s.ListLanguages)

	// --- conversations ---
	r.Post("/conversations", s.CreateConversation)
	r.Route("/conversations/{id}", func(cr chi.Router) {
		cr.Get("/", s.GetConversation)
		cr.Delete("/", s.DeleteConversation)
		cr.Put("/languages", s.ConfigureConversation)
		cr.Post("/relay", s.Relay)
		cr.Post("/reset", s.ResetConversation)
		cr.Get("/transcript.pdf", s.ExportTranscript)
		cr.Get("/ws", s.RelaySocket)
	})

	// --- single shot ---
	r.Post("/translate", s.Translate)
	r.Post("/translate/speech", s.TranslateSpeech)
	r.Get("/history", s.ListHistory)
	r.Delete("/history", s.ClearHistory)
	r.Get("/history.pdf", s.ExportHistory)
	r.Get("/search", s.Search)

	return r
}
