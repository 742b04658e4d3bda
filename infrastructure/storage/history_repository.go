package storage

import (
	"fmt"
	"log/slog"
	"voice-relay/domain"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v4"
)

const historyPrefix = "history:"

type HistoryRepository struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger, limit *int) HistoryRepository {
	return HistoryRepository{db: db, log: log, limit: limit}
}

// StoreHistory persists an entry under "history:{timestamp_padded}:{uuid}".
func (r HistoryRepository) StoreHistory(entry domain.HistoryEntry) error {
	key := fmt.Sprintf("%s%019d:%s", historyPrefix, entry.At.UnixNano(), entry.ID)
	bytes, err := sonic.Marshal(fromHistoryEntry(entry))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListHistory returns archived single-shot translations, oldest first.
func (r HistoryRepository) ListHistory() ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(historyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if r.limit != nil && len(entries) == *r.limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d entries reached", *r.limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var record historyRecord
				if err := sonic.Unmarshal(value, &record); err != nil {
					return err
				}
				entry, err := toHistoryEntry(record)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return entries, err
}

// ClearHistory drops every archived history entry.
func (r HistoryRepository) ClearHistory() error {
	return r.db.DropPrefix([]byte(historyPrefix))
}
