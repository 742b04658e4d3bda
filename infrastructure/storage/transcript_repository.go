package storage

import (
	"fmt"
	"log/slog"
	"voice-relay/domain"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v4"
)

const transcriptPrefix = "transcript:"

type TranscriptRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

// NewTranscriptRepository keeps committed turns. limit bounds every listing, nil means no bound.
func NewTranscriptRepository(db *badger.DB, log *slog.Logger, limit *int) TranscriptRepository {
	return TranscriptRepository{db: db, log: log, limit: limit}
}

// StoreEntry persists an entry under "transcript:{session}:{timestamp_padded}:{uuid}".
// The 19-digit padding keeps lexicographical and chronological order aligned,
// the uuid separates two entries committed in the same nanosecond.
func (r TranscriptRepository) StoreEntry(sessionID string, entry domain.TranscriptEntry) error {
	key := fmt.Sprintf("%s%s:%019d:%s", transcriptPrefix, sessionID, entry.At.UnixNano(), entry.ID)
	bytes, err := sonic.Marshal(fromTranscriptEntry(sessionID, entry))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListEntries returns the archived entries of a session, oldest first.
func (r TranscriptRepository) ListEntries(sessionID string) ([]domain.TranscriptEntry, error) {
	records, err := r.scan(fmt.Sprintf("%s%s:", transcriptPrefix, sessionID))
	if err != nil {
		return nil, err
	}
	entries := make([]domain.TranscriptEntry, 0, len(records))
	for _, record := range records {
		entry, err := toTranscriptEntry(record)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Sessions lists every session id that has archived entries, in key order.
func (r TranscriptRepository) Sessions() ([]string, error) {
	var sessions []string
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(transcriptPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			session := sessionOf(it.Item().Key())
			if len(sessions) == 0 || sessions[len(sessions)-1] != session {
				sessions = append(sessions, session)
			}
		}
		return nil
	})
	return sessions, err
}

func (r TranscriptRepository) scan(prefix string) ([]transcriptRecord, error) {
	var records []transcriptRecord
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			if r.limit != nil && len(records) == *r.limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d entries reached", *r.limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var record transcriptRecord
				if err := sonic.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

// sessionOf extracts the session id from "transcript:{session}:{ts}:{uuid}".
// Session ids never contain ':' since they are uuids.
func sessionOf(key []byte) string {
	rest := key[len(transcriptPrefix):]
	for i, b := range rest {
		if b == ':' {
			return string(rest[:i])
		}
	}
	return string(rest)
}
