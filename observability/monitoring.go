package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Stats is the snapshot served by the health endpoint.
type Stats struct {
	// --- RELAY METRICS ---
	RelaySteps          uint64 `json:"relay_steps"`
	RecognitionFailures uint64 `json:"recognition_failures"`
	TranslationFailures uint64 `json:"translation_failures"`
	SynthesisFailures   uint64 `json:"synthesis_failures"`
	Translations        uint64 `json:"translations"`
	AudioBytesIn        uint64 `json:"audio_bytes_in"`
	ActiveSessions      int    `json:"active_sessions"`

	// --- PROCESS METRICS ---
	Pid        int32   `json:"pid"`
	Status     string  `json:"status"`
	CPUPercent float64 `json:"cpu_percent"`
	RSSBytes   uint64  `json:"rss_bytes"`
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	Goroutines int     `json:"goroutines"`
	UpdatedAt  string  `json:"updated_at"`
}

// MonitoringManager aggregates relay counters and refreshes process stats periodically.
// Counters are atomics so handlers never wait on the refresh.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats Stats
	sessions    func() int

	relaySteps          uint64
	recognitionFailures uint64
	translationFailures uint64
	synthesisFailures   uint64
	translations        uint64
	audioBytesIn        uint64
}

// NewMonitoringManager takes a callback reporting the live session count, nil reports zero.
func NewMonitoringManager(log *slog.Logger, sessions func() int) *MonitoringManager {
	if sessions == nil {
		sessions = func() int { return 0 }
	}
	return &MonitoringManager{log: log, sessions: sessions}
}

func (mm *MonitoringManager) IncrRelaySteps() {
	atomic.AddUint64(&mm.relaySteps, 1)
}

func (mm *MonitoringManager) IncrRecognitionFailures() {
	atomic.AddUint64(&mm.recognitionFailures, 1)
}

func (mm *MonitoringManager) IncrTranslationFailures() {
	atomic.AddUint64(&mm.translationFailures, 1)
}

func (mm *MonitoringManager) IncrSynthesisFailures() {
	atomic.AddUint64(&mm.synthesisFailures, 1)
}

func (mm *MonitoringManager) IncrTranslations() {
	atomic.AddUint64(&mm.translations, 1)
}

func (mm *MonitoringManager) AddAudioBytes(n int) {
	atomic.AddUint64(&mm.audioBytesIn, uint64(n))
}

// Listen refreshes the snapshot every interval until ctx is done.
func (mm *MonitoringManager) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		mm.log.Warn("Process stats unavailable", "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Monitoring manager stopped")
			return
		case <-ticker.C:
			mm.Refresh(p)
		}
	}
}

// Refresh recomputes the snapshot. A nil process only skips the process metrics.
func (mm *MonitoringManager) Refresh(p *process.Process) {
	stats := mm.counters()
	stats.ActiveSessions = mm.sessions()
	stats.Pid = int32(os.Getpid())
	stats.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if p != nil {
		rss, cpu, status, err := selfStats(p)
		if err != nil {
			mm.log.Debug("Failed to collect self stats", "err", err)
		} else {
			stats.RSSBytes, stats.CPUPercent, stats.Status = rss, cpu, status
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.AllocMemMb = m.Alloc / 1024 / 1024
	stats.NumGC = m.NumGC
	stats.Goroutines = runtime.NumGoroutine()

	mm.mu.Lock()
	mm.latestStats = stats
	mm.mu.Unlock()

	mm.log.Debug("Stats updated",
		"relay_steps", stats.RelaySteps,
		"translations", stats.Translations,
		"sessions", stats.ActiveSessions,
		"mem_mb", stats.AllocMemMb,
	)
}

// GetLatest returns the last refreshed snapshot with up-to-date counters.
func (mm *MonitoringManager) GetLatest() Stats {
	mm.mu.RLock()
	stats := mm.latestStats
	mm.mu.RUnlock()

	counters := mm.counters()
	stats.RelaySteps = counters.RelaySteps
	stats.RecognitionFailures = counters.RecognitionFailures
	stats.TranslationFailures = counters.TranslationFailures
	stats.SynthesisFailures = counters.SynthesisFailures
	stats.Translations = counters.Translations
	stats.AudioBytesIn = counters.AudioBytesIn
	stats.ActiveSessions = mm.sessions()
	return stats
}

func (mm *MonitoringManager) counters() Stats {
	return Stats{
		RelaySteps:          atomic.LoadUint64(&mm.relaySteps),
		RecognitionFailures: atomic.LoadUint64(&mm.recognitionFailures),
		TranslationFailures: atomic.LoadUint64(&mm.translationFailures),
		SynthesisFailures:   atomic.LoadUint64(&mm.synthesisFailures),
		Translations:        atomic.LoadUint64(&mm.translations),
		AudioBytesIn:        atomic.LoadUint64(&mm.audioBytesIn),
	}
}

// selfStats retrieves memory, CPU and OS status for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
