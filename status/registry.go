package status

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Metric keys recorded by the game loop
const (
	Ticks        = "game.ticks"
	FoodEaten    = "snake.food_eaten"
	SnakeLength  = "snake.length"
	TickInterval = "game.tick_interval_ms"
)

// Registry holds the session counters and gauges
// Handles are created on first lookup; the game caches them so the loop never takes the lock
type Registry struct {
	mu       sync.Mutex
	counters map[string]*atomic.Int64
	gauges   map[string]*Gauge
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*Gauge),
	}
}

// Counter returns the integer metric for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return lookup(&r.mu, r.counters, key)
}

// Gauge returns the float metric for key, creating it on first use
func (r *Registry) Gauge(key string) *Gauge {
	return lookup(&r.mu, r.gauges, key)
}

func lookup[T any](mu *sync.Mutex, m map[string]*T, key string) *T {
	mu.Lock()
	defer mu.Unlock()
	ptr, ok := m[key]
	if !ok {
		ptr = new(T)
		m[key] = ptr
	}
	return ptr
}

// Lines renders every metric as "key=value", counters first, each group in key order
func (r *Registry) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, 0, len(r.counters)+len(r.gauges))
	for _, k := range slices.Sorted(maps.Keys(r.counters)) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, r.counters[k].Load()))
	}
	for _, k := range slices.Sorted(maps.Keys(r.gauges)) {
		lines = append(lines, fmt.Sprintf("%s=%g", k, r.gauges[k].Value()))
	}
	return lines
}
