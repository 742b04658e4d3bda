package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type fakeExpirer struct {
	mu    sync.Mutex
	calls []time.Duration
	ids   []string
}

func (f *fakeExpirer) Expire(idle time.Duration, _ time.Time) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, idle)
	ids := f.ids
	f.ids = nil
	return ids
}

func (f *fakeExpirer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSessionJanitor_Sweep(t *testing.T) {
	req := require.New(t)
	expirer := &fakeExpirer{ids: []string{"a", "b"}}
	janitor := NewSessionJanitor(logs.GetLoggerFromLevel(slog.LevelDebug), expirer, 30*time.Minute, time.Minute)

	req.Equal(2, janitor.Sweep())
	req.Equal(0, janitor.Sweep())
	req.Equal([]time.Duration{30 * time.Minute, 30 * time.Minute}, expirer.calls)
}

func TestSessionJanitor_Run(t *testing.T) {
	req := require.New(t)
	expirer := &fakeExpirer{}
	janitor := NewSessionJanitor(logs.GetLoggerFromLevel(slog.LevelDebug), expirer, time.Minute, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- janitor.Run(ctx) }()

	req.Eventually(func() bool { return expirer.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	req.NoError(<-done)
}
