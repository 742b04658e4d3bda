package observability

import (
	"log/slog"
	"os"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/shirou/gopsutil/process"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Counters(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug), func() int { return 3 })

	// When
	mm.IncrRelaySteps()
	mm.IncrRelaySteps()
	mm.IncrRecognitionFailures()
	mm.IncrTranslationFailures()
	mm.IncrSynthesisFailures()
	mm.IncrTranslations()
	mm.AddAudioBytes(1024)

	// Then counters show up without waiting for a refresh
	stats := mm.GetLatest()
	req.Equal(uint64(2), stats.RelaySteps)
	req.Equal(uint64(1), stats.RecognitionFailures)
	req.Equal(uint64(1), stats.TranslationFailures)
	req.Equal(uint64(1), stats.SynthesisFailures)
	req.Equal(uint64(1), stats.Translations)
	req.Equal(uint64(1024), stats.AudioBytesIn)
	req.Equal(3, stats.ActiveSessions)
}

func TestMonitoringManager_Refresh(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(logs.GetLoggerFromLevel(slog.LevelDebug), nil)
	p, err := process.NewProcess(int32(os.Getpid()))
	req.NoError(err)

	// When
	mm.Refresh(p)

	// Then
	stats := mm.GetLatest()
	req.Equal(int32(os.Getpid()), stats.Pid)
	req.Greater(stats.Goroutines, 0)
	req.NotEmpty(stats.UpdatedAt)
	req.Equal(0, stats.ActiveSessions)
}
