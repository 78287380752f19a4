package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 stored as bits; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Value() float64 {
	return math.Float64frombits(g.bits.Load())
}
