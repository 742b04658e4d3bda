package services

import (
	"fmt"
	"io"
	"log/slog"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/errors"
)

type ExportService struct {
	log      *slog.Logger
	exporter contract.Exporter
}

func NewExportService(log *slog.Logger, exporter contract.Exporter) *ExportService {
	return &ExportService{log: log, exporter: exporter}
}

// ExportHistory writes the single-shot history. An empty history has nothing to export.
func (s *ExportService) ExportHistory(w io.Writer, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: history is empty", errors.ErrNothingToExport)
	}
	if err := s.exporter.History(w, entries); err != nil {
		return fmt.Errorf("export history: %w", err)
	}
	s.log.Debug("History exported", "entries", len(entries))
	return nil
}

func (s *ExportService) ExportTranscript(w io.Writer, state domain.ConversationState) error {
	if len(state.Transcript) == 0 {
		return fmt.Errorf("%w: transcript is empty", errors.ErrNothingToExport)
	}
	if err := s.exporter.Transcript(w, state.Transcript); err != nil {
		return fmt.Errorf("export transcript: %w", err)
	}
	s.log.Debug("Transcript exported", "entries", len(state.Transcript))
	return nil
}
