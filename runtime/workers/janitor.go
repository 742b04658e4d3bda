package workers

import (
	"context"
	"log/slog"
	"time"
)

// SessionExpirer drops sessions idle for longer than a duration.
type SessionExpirer interface {
	Expire(idle time.Duration, now time.Time) []string
}

// SessionJanitor periodically forgets abandoned conversations so the registry does not grow forever.
type SessionJanitor struct {
	log      *slog.Logger
	sessions SessionExpirer
	idle     time.Duration
	interval time.Duration
	now      func() time.Time
}

func NewSessionJanitor(log *slog.Logger, sessions SessionExpirer, idle, interval time.Duration) *SessionJanitor {
	return &SessionJanitor{
		log:      log,
		sessions: sessions,
		idle:     idle,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (j *SessionJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			j.Sweep()
		}
	}
}

// Sweep runs one expiry pass and returns how many sessions were dropped.
func (j *SessionJanitor) Sweep() int {
	expired := j.sessions.Expire(j.idle, j.now())
	if len(expired) > 0 {
		j.log.Info("Idle conversations expired", "count", len(expired), "idle", j.idle)
	}
	return len(expired)
}
