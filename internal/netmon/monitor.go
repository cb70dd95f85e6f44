// Package netmon tracks backend reachability and notifies subscribers on
// transitions, so stores can switch to fallback behavior while offline.
package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Probe reports whether the backend is currently reachable.
type Probe func(ctx context.Context) bool

type Monitor struct {
	probe    Probe
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	online bool
	nextID int
	subs   map[int]func(bool)
}

// NewMonitor starts optimistic: consumers assume connectivity until a probe
// says otherwise.
func NewMonitor(probe Probe, interval time.Duration, logger *slog.Logger) *Monitor {
	return &Monitor{
		probe:    probe,
		interval: interval,
		logger:   logger,
		online:   true,
		subs:     make(map[int]func(bool)),
	}
}

func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe registers a transition callback and returns its unsubscribe
// function. Callbacks fire only when the state actually changes.
func (m *Monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// SetOnline records a connectivity state and notifies subscribers on a
// transition. Exposed so transports can report failures directly between
// probes.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	m.logger.Info("connectivity changed", "online", online)
	for _, fn := range subs {
		fn(online)
	}
}

// Start probes immediately and then on every tick until the context ends.
func (m *Monitor) Start(ctx context.Context) error {
	m.logger.Info("connectivity monitor started", "interval", m.interval)

	m.runProbe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("connectivity monitor stopped")
			return ctx.Err()
		case <-ticker.C:
			m.runProbe(ctx)
		}
	}
}

func (m *Monitor) runProbe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	m.SetOnline(m.probe(probeCtx))
}
