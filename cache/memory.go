package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value      interface{}
	staleAt    time.Time
	lastAccess time.Time
}

// Memory is an in-process Store. Stale entries miss on Get; entries untouched
// for longer than the GC window are removed by a janitor goroutine.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*entry
	gcAfter time.Duration
	stop    chan struct{}
}

func NewMemory(gcAfter time.Duration) *Memory {
	m := &Memory{
		entries: make(map[string]*entry),
		gcAfter: gcAfter,
		stop:    make(chan struct{}),
	}
	go m.janitor()
	return m
}

func (m *Memory) Get(key string) (interface{}, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.staleAt) {
		return nil, false
	}
	e.lastAccess = time.Now()
	return e.value, true
}

func (m *Memory) Set(key string, value interface{}, staleAfter time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.entries[key] = &entry{
		value:      value,
		staleAt:    now.Add(staleAfter),
		lastAccess: now,
	}
}

func (m *Memory) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func (m *Memory) InvalidatePrefix(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
}

func (m *Memory) Close() {
	close(m.stop)
}

func (m *Memory) janitor() {
	interval := m.gcAfter
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			m.mu.Lock()
			for k, e := range m.entries {
				if now.Sub(e.lastAccess) > m.gcAfter {
					delete(m.entries, k)
				}
			}
			m.mu.Unlock()
		}
	}
}
