package storage

import (
	"context"
	"testing"
	"time"
	"voice-relay/domain"

	"github.com/stretchr/testify/require"
)

func TestSearchIndex_Search(t *testing.T) {
	req := require.New(t)
	_, log := setupBadger(t)
	index := NewSearchIndex(setupBluge(t), log)
	ctx := context.Background()
	at := time.Now().UTC()

	// Given one transcript entry and one history entry
	turn := transcriptEntry(domain.ParticipantA, "where is the train station", "où est la gare", at)
	req.NoError(index.IndexTranscript("session-1", turn))
	single := historyEntry("the weather is lovely", "das Wetter ist schön", 1, at)
	req.NoError(index.IndexHistory(single))

	// When searching a spoken word
	hits, err := index.Search(ctx, "station", 10)

	// Then only the transcript entry matches
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(turn.ID.String(), hits[0].ID)
	req.Equal(KindTranscript, hits[0].Kind)
	req.Equal("session-1", hits[0].Session)
	req.Equal("où est la gare", hits[0].Translated)

	// When searching a translated word
	hits, err = index.Search(ctx, "wetter", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(KindHistory, hits[0].Kind)
	req.Equal("the weather is lovely", hits[0].Original)
}

func TestSearchIndex_Search_Blank_And_Missing(t *testing.T) {
	req := require.New(t)
	_, log := setupBadger(t)
	index := NewSearchIndex(setupBluge(t), log)
	req.NoError(index.IndexHistory(historyEntry("hello", "bonjour", 0, time.Now().UTC())))

	hits, err := index.Search(context.Background(), "  ", 10)
	req.NoError(err)
	req.Empty(hits)

	hits, err = index.Search(context.Background(), "submarine", 10)
	req.NoError(err)
	req.Empty(hits)
}

func TestSearchIndex_Reindex_Replaces(t *testing.T) {
	req := require.New(t)
	_, log := setupBadger(t)
	index := NewSearchIndex(setupBluge(t), log)
	entry := historyEntry("first draft", "premier jet", 0, time.Now().UTC())
	req.NoError(index.IndexHistory(entry))

	entry.Input = "final version"
	req.NoError(index.IndexHistory(entry))

	hits, err := index.Search(context.Background(), "draft", 10)
	req.NoError(err)
	req.Empty(hits)
	hits, err = index.Search(context.Background(), "final", 10)
	req.NoError(err)
	req.Len(hits, 1)
}
