// Command transcript_inspect dumps the archived transcripts and translation history of a badger directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"voice-relay/domain"
	"voice-relay/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	session := flag.String("session", "", "Only dump this session, empty dumps every session")
	history := flag.Bool("history", false, "Dump the translation history instead of transcripts")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	logger := logs.GetLoggerFromLevel(slog.LevelWarn)
	if *history {
		err = dumpHistory(os.Stdout, storage.NewHistoryRepository(db, logger, nil))
	} else {
		err = dumpTranscripts(os.Stdout, storage.NewTranscriptRepository(db, logger, nil), *session)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func dumpTranscripts(w io.Writer, repository storage.TranscriptRepository, only string) error {
	sessions := []string{only}
	if only == "" {
		var err error
		if sessions, err = repository.Sessions(); err != nil {
			return err
		}
	}

	table := newTable(w, []string{"Session", "Entry", "Speaker", "Languages", "At", "Spoken", "Translated"})
	for _, session := range sessions {
		entries, err := repository.ListEntries(session)
		if err != nil {
			return fmt.Errorf("session %s: %w", session, err)
		}
		for _, entry := range entries {
			table.Append([]string{
				short(session),
				short(entry.ID.String()),
				entry.Speaker.String(),
				fmt.Sprintf("%s→%s", entry.SourceLanguage, entry.TargetLanguage),
				entry.At.Format("2006-01-02 15:04:05"),
				entry.Spoken,
				entry.Translated,
			})
		}
	}
	table.Render()
	return nil
}

func dumpHistory(w io.Writer, repository storage.HistoryRepository) error {
	entries, err := repository.ListHistory()
	if err != nil {
		return err
	}
	table := newTable(w, []string{"Entry", "Languages", "Sentiment", "At", "Input", "Translated"})
	for _, entry := range entries {
		table.Append([]string{
			short(entry.ID.String()),
			fmt.Sprintf("%s→%s", entry.DetectedLanguage, entry.TargetLanguage),
			sentimentOf(entry.Sentiment),
			entry.At.Format("2006-01-02 15:04:05"),
			entry.Input,
			entry.Translated,
		})
	}
	table.Render()
	return nil
}

func sentimentOf(s domain.Sentiment) string {
	return fmt.Sprintf("%s (%.2f)", s.Polarity, s.Score)
}

// short keeps the first 8 characters of an identifier for readability.
func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		// A crashed writer leaves the value log dirty, a writable open truncates it.
		repaired, repairErr := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
		if repairErr != nil {
			return nil, fmt.Errorf("repair failed: %w", repairErr)
		}
		_ = repaired.Close()
		return badger.Open(opts)
	}
	return db, err
}
