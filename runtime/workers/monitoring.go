package workers

import (
	"context"
	"time"
	"voice-relay/observability"
)

// MonitoringWorker refreshes the health snapshot under supervision.
type MonitoringWorker struct {
	monitor  *observability.MonitoringManager
	interval time.Duration
}

func NewMonitoringWorker(monitor *observability.MonitoringManager, interval time.Duration) *MonitoringWorker {
	return &MonitoringWorker{monitor: monitor, interval: interval}
}

func (w *MonitoringWorker) Run(ctx context.Context) error {
	w.monitor.Listen(ctx, w.interval)
	return nil
}
