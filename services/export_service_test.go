package services

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"
	"voice-relay/domain"
	"voice-relay/errors"
	"voice-relay/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExportService_ExportHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	exporter := mocks.NewMockExporter(ctrl)
	service := NewExportService(logs.GetLoggerFromLevel(slog.LevelDebug), exporter)

	t.Run("should refuse an empty history", func(t *testing.T) {
		req := require.New(t)
		exporter.EXPECT().History(gomock.Any(), gomock.Any()).Times(0)

		err := service.ExportHistory(&bytes.Buffer{}, nil)

		req.ErrorIs(err, errors.ErrNothingToExport)
	})

	t.Run("should delegate to the exporter", func(t *testing.T) {
		req := require.New(t)
		entries := []domain.HistoryEntry{{Input: "hello", Translated: "bonjour"}}
		exporter.EXPECT().History(gomock.Any(), entries).Return(nil)

		req.NoError(service.ExportHistory(&bytes.Buffer{}, entries))
	})

	t.Run("should wrap exporter failures", func(t *testing.T) {
		req := require.New(t)
		exporter.EXPECT().History(gomock.Any(), gomock.Any()).Return(fmt.Errorf("font missing"))

		err := service.ExportHistory(&bytes.Buffer{}, []domain.HistoryEntry{{Input: "x"}})

		req.ErrorContains(err, "font missing")
	})
}

func TestExportService_ExportTranscript(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	exporter := mocks.NewMockExporter(ctrl)
	service := NewExportService(logs.GetLoggerFromLevel(slog.LevelDebug), exporter)

	state := domain.NewConversationState("hi", "fr")
	req.ErrorIs(service.ExportTranscript(&bytes.Buffer{}, state.Snapshot()), errors.ErrNothingToExport)

	state.Commit("hello", "bonjour", fixedNow)
	exporter.EXPECT().Transcript(gomock.Any(), gomock.Len(1)).Return(nil)

	req.NoError(service.ExportTranscript(&bytes.Buffer{}, state.Snapshot()))
}
