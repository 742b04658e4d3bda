package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"voice-relay/domain"

	"github.com/blugelabs/bluge"
)

const (
	KindTranscript = "transcript"
	KindHistory    = "history"

	fieldID         = "_id"
	fieldKind       = "kind"
	fieldSession    = "session"
	fieldText       = "text"
	fieldOriginal   = "original"
	fieldTranslated = "translated"
	fieldLanguage   = "language"
)

// SearchHit is one indexed text matching a query.
type SearchHit struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	Session    string  `json:"session,omitempty"`
	Original   string  `json:"original"`
	Translated string  `json:"translated"`
	Language   string  `json:"language"`
	Score      float64 `json:"score"`
}

// SearchIndex makes archived transcript and history texts searchable.
// Both the spoken text and its translation feed the same full-text field.
type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchIndex(writer *bluge.Writer, log *slog.Logger) *SearchIndex {
	return &SearchIndex{writer: writer, log: log}
}

func (s *SearchIndex) IndexTranscript(sessionID string, entry domain.TranscriptEntry) error {
	doc := bluge.NewDocument(entry.ID.String()).
		AddField(bluge.NewKeywordField(fieldKind, KindTranscript).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSession, sessionID).StoreValue()).
		AddField(bluge.NewKeywordField(fieldLanguage, string(entry.TargetLanguage)).StoreValue()).
		AddField(bluge.NewTextField(fieldOriginal, entry.Spoken).StoreValue()).
		AddField(bluge.NewTextField(fieldTranslated, entry.Translated).StoreValue()).
		AddField(bluge.NewTextField(fieldText, entry.Spoken+" "+entry.Translated))
	return s.writer.Update(doc.ID(), doc)
}

func (s *SearchIndex) IndexHistory(entry domain.HistoryEntry) error {
	doc := bluge.NewDocument(entry.ID.String()).
		AddField(bluge.NewKeywordField(fieldKind, KindHistory).StoreValue()).
		AddField(bluge.NewKeywordField(fieldLanguage, string(entry.TargetLanguage)).StoreValue()).
		AddField(bluge.NewTextField(fieldOriginal, entry.Input).StoreValue()).
		AddField(bluge.NewTextField(fieldTranslated, entry.Translated).StoreValue()).
		AddField(bluge.NewTextField(fieldText, entry.Input+" "+entry.Translated))
	return s.writer.Update(doc.ID(), doc)
}

// Search returns at most limit hits, most relevant first.
func (s *SearchIndex) Search(ctx context.Context, query string, limit int) ([]SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	reader, err := s.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			s.log.Warn("Failed to close index reader", "err", err)
		}
	}()

	request := bluge.NewTopNSearch(limit, bluge.NewMatchQuery(query).SetField(fieldText))
	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	var hits []SearchHit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := SearchHit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case fieldID:
				hit.ID = string(value)
			case fieldKind:
				hit.Kind = string(value)
			case fieldSession:
				hit.Session = string(value)
			case fieldOriginal:
				hit.Original = string(value)
			case fieldTranslated:
				hit.Translated = string(value)
			case fieldLanguage:
				hit.Language = string(value)
			}
			return true
		})
		if err != nil {
			break
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("iterate hits for %q: %w", query, err)
	}
	s.log.Debug("Search done", "query", query, "hits", len(hits))
	return hits, nil
}
