package storage

import (
	"testing"
	"time"
	"voice-relay/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func historyEntry(input, translated string, score float64, at time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:               uuid.New(),
		Input:            input,
		Translated:       translated,
		DetectedLanguage: "en",
		TargetLanguage:   "de",
		Sentiment:        domain.NewSentiment(score),
		At:               at,
	}
}

func TestHistoryRepository_Store_List_Clear(t *testing.T) {
	req := require.New(t)
	db, log := setupBadger(t)
	repository := NewHistoryRepository(db, log, nil)
	at := time.Now().UTC()

	second := historyEntry("thank you", "danke", 1, at.Add(time.Second))
	first := historyEntry("this is bad", "das ist schlecht", -1, at)
	req.NoError(repository.StoreHistory(second))
	req.NoError(repository.StoreHistory(first))

	// When
	fetched, err := repository.ListHistory()

	// Then
	req.NoError(err)
	req.Equal([]domain.HistoryEntry{first, second}, fetched)
	req.Equal(domain.Negative, fetched[0].Sentiment.Polarity)

	// When cleared
	req.NoError(repository.ClearHistory())
	fetched, err = repository.ListHistory()
	req.NoError(err)
	req.Empty(fetched)
}
