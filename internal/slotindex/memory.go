package slotindex

import (
	"context"
	"sync"

	"github.com/riquelima/SandyPetShop-v3/internal/domain"
)

type counter struct {
	mu sync.Mutex
	n  int
}

// Memory is a process-local slot index. Each slot key has its own lock, so
// reservations on different slots never contend. Rebuild takes the outer lock
// exclusively and waits for in-flight operations.
type Memory struct {
	mu       sync.RWMutex
	counters *sync.Map

	stayMu sync.Mutex
	stays  map[string]domain.StayInterval
}

func NewMemory() *Memory {
	return &Memory{
		counters: new(sync.Map),
		stays:    make(map[string]domain.StayInterval),
	}
}

func (m *Memory) counter(key string) *counter {
	c, _ := m.counters.LoadOrStore(key, &counter{})
	return c.(*counter)
}

func (m *Memory) CurrentOccupancy(_ context.Context, key string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.counters.Load(key)
	if !ok {
		return 0, nil
	}
	c := v.(*counter)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n, nil
}

func (m *Memory) TryReserve(_ context.Context, key string, capacity int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := m.counter(key)
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.n >= capacity {
		return false, nil
	}
	c.n++
	return true, nil
}

// Release never drops a counter below zero.
func (m *Memory) Release(_ context.Context, key string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.counters.Load(key)
	if !ok {
		return nil
	}
	c := v.(*counter)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n > 0 {
		c.n--
	}
	return nil
}

func (m *Memory) IntervalOccupancy(_ context.Context, stay domain.StayInterval) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.stayMu.Lock()
	defer m.stayMu.Unlock()
	return peakOverlap(m.staysLocked(), stay), nil
}

// TryReserveInterval is idempotent per reservation id.
func (m *Memory) TryReserveInterval(_ context.Context, poolSize int, reservationID string, stay domain.StayInterval) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.stayMu.Lock()
	defer m.stayMu.Unlock()

	if _, ok := m.stays[reservationID]; ok {
		return true, nil
	}
	if peakOverlap(m.staysLocked(), stay) >= poolSize {
		return false, nil
	}
	m.stays[reservationID] = stay
	return true, nil
}

func (m *Memory) ReleaseInterval(_ context.Context, reservationID string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.stayMu.Lock()
	delete(m.stays, reservationID)
	m.stayMu.Unlock()
	return nil
}

func (m *Memory) staysLocked() []domain.StayInterval {
	out := make([]domain.StayInterval, 0, len(m.stays))
	for _, s := range m.stays {
		out = append(out, s)
	}
	return out
}

// Rebuild replaces the whole index with st.
func (m *Memory) Rebuild(_ context.Context, st domain.OccupancyState) error {
	stays := make(map[string]domain.StayInterval, len(st.Stays))
	for id, s := range st.Stays {
		stays[id] = s
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	counters := new(sync.Map)
	for k, n := range st.Slots {
		counters.Store(k, &counter{n: n})
	}
	m.counters = counters

	m.stayMu.Lock()
	m.stays = stays
	m.stayMu.Unlock()
	return nil
}

func (m *Memory) State(_ context.Context) (domain.OccupancyState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := domain.NewOccupancyState()
	m.counters.Range(func(k, v any) bool {
		c := v.(*counter)
		c.mu.Lock()
		if c.n > 0 {
			st.Slots[k.(string)] = c.n
		}
		c.mu.Unlock()
		return true
	})

	m.stayMu.Lock()
	for id, s := range m.stays {
		st.Stays[id] = s
	}
	m.stayMu.Unlock()
	return st, nil
}
