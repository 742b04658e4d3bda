package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one single-shot translation. Entries are not turn-paired.
type HistoryEntry struct {
	ID               uuid.UUID
	Input            string
	Translated       string
	DetectedLanguage LanguageCode
	TargetLanguage   LanguageCode
	Sentiment        Sentiment
	At               time.Time
}

// History is an append-only list ordered by insertion.
type History struct {
	entries []HistoryEntry
}

func (h *History) Append(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h *History) Entries() []HistoryEntry {
	entries := make([]HistoryEntry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Clear() {
	h.entries = nil
}
