package runtime

import (
	"log/slog"
	"sync"
	"testing"
	"time"
	"voice-relay/domain"
	"voice-relay/errors"
	"voice-relay/infrastructure/speech"
	"voice-relay/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(opts ...services.ConversationOption) *Registry {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	languages := domain.NewLanguageRegistry(domain.DefaultLanguages)
	return NewRegistry(func(id string, langA, langB domain.LanguageCode) (*services.ConversationService, error) {
		return services.NewConversationService(id, log, languages,
			speech.NewScriptedRecognizer(), speech.NewDictionaryTranslator(nil), speech.NewSilentSynthesizer(),
			langA, langB, opts...)
	})
}

func TestRegistry_Create_Then_Get(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()

	// Given no session exists
	req.Equal(0, registry.Len())

	// When a conversation is started
	session, err := registry.Create("hi", "fr")

	// Then it can be found by its handle
	req.NoError(err)
	req.Equal(1, registry.Len())
	found, err := registry.Get(session.ID())
	req.NoError(err)
	req.Same(session, found)
	req.Equal(domain.LanguageCode("fr"), found.State().Languages[domain.ParticipantB])
	req.Contains(registry.IDs(), session.ID())
}

func TestRegistry_Create_UnknownLanguage(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()

	// When
	_, err := registry.Create("hi", "xx")

	// Then nothing is registered
	req.ErrorIs(err, errors.ErrUnknownLanguage)
	req.Equal(0, registry.Len())
}

func TestRegistry_Discard(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()
	session, err := registry.Create("en", "de")
	req.NoError(err)

	// When
	req.NoError(registry.Discard(session.ID()))

	// Then
	_, err = registry.Get(session.ID())
	req.ErrorIs(err, errors.ErrSessionNotFound)
	req.ErrorIs(registry.Discard(session.ID()), errors.ErrSessionNotFound)
	req.Equal(0, registry.Len())
}

func TestRegistry_Concurrent_Create(t *testing.T) {
	req := require.New(t)
	registry := newTestRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = registry.Create("ta", "ja")
		}()
	}
	wg.Wait()

	req.Equal(50, registry.Len())
}

func TestRegistry_Expire(t *testing.T) {
	req := require.New(t)
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	registry := newTestRegistry(services.WithClock(func() time.Time { return clock }))

	// Given a session left alone and one used later
	stale, err := registry.Create("hi", "fr")
	req.NoError(err)
	clock = clock.Add(20 * time.Minute)
	fresh, err := registry.Create("de", "es")
	req.NoError(err)

	// When sessions idle for more than 15 minutes are expired
	expired := registry.Expire(15*time.Minute, clock.Add(time.Minute))

	// Then only the stale one is gone
	req.Equal([]string{stale.ID()}, expired)
	_, err = registry.Get(stale.ID())
	req.ErrorIs(err, errors.ErrSessionNotFound)
	_, err = registry.Get(fresh.ID())
	req.NoError(err)
	req.Empty(registry.Expire(15*time.Minute, clock.Add(time.Minute)))
}
