// Package metrics provides in-process counters for signing operations.
// Counters are atomic, so a single Metrics may be shared across goroutines.
package metrics

import (
	"sync/atomic"
	"time"
)

// Op identifies a recorded operation.
type Op string

// Recorded operations.
const (
	OpSign     Op = "sign"
	OpSignHash Op = "sign_hash"
	OpRecover  Op = "recover"
)

type opCounters struct {
	total        atomic.Int64
	errors       atomic.Int64
	latencyNanos atomic.Int64
}

func (c *opCounters) record(duration time.Duration, err error) {
	c.total.Add(1)
	c.latencyNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.errors.Add(1)
	}
}

func (c *opCounters) reset() {
	c.total.Store(0)
	c.errors.Store(0)
	c.latencyNanos.Store(0)
}

// Metrics holds operation counters. The zero value is ready to use.
type Metrics struct {
	sign     opCounters
	signHash opCounters
	recover  opCounters
}

// New returns an empty Metrics.
func New() *Metrics {
	return &Metrics{}
}

func (m *Metrics) counters(op Op) *opCounters {
	switch op {
	case OpSign:
		return &m.sign
	case OpSignHash:
		return &m.signHash
	case OpRecover:
		return &m.recover
	default:
		return nil
	}
}

// Record records one operation with its duration and outcome.
// Unknown operations are ignored.
func (m *Metrics) Record(op Op, duration time.Duration, err error) {
	if c := m.counters(op); c != nil {
		c.record(duration, err)
	}
}

// OpSnapshot is a point-in-time copy of one operation's counters.
type OpSnapshot struct {
	Total        int64 `json:"total"`
	Errors       int64 `json:"errors"`
	LatencyNanos int64 `json:"latency_nanos"`
}

// AvgLatencyMs returns the mean latency in milliseconds, or 0 with no calls.
func (s OpSnapshot) AvgLatencyMs() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.LatencyNanos) / float64(s.Total) / 1e6
}

// Snapshot returns a point-in-time copy of all metrics.
type Snapshot struct {
	Sign     OpSnapshot `json:"sign"`
	SignHash OpSnapshot `json:"sign_hash"`
	Recover  OpSnapshot `json:"recover"`
}

func (c *opCounters) snapshot() OpSnapshot {
	return OpSnapshot{
		Total:        c.total.Load(),
		Errors:       c.errors.Load(),
		LatencyNanos: c.latencyNanos.Load(),
	}
}

// Snapshot returns a point-in-time copy of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Sign:     m.sign.snapshot(),
		SignHash: m.signHash.snapshot(),
		Recover:  m.recover.snapshot(),
	}
}

// Total returns the number of recorded calls across all operations.
func (m *Metrics) Total() int64 {
	return m.sign.total.Load() + m.signHash.total.Load() + m.recover.total.Load()
}

// Errors returns the number of failed calls across all operations.
func (m *Metrics) Errors() int64 {
	return m.sign.errors.Load() + m.signHash.errors.Load() + m.recover.errors.Load()
}

// Reset resets all metrics to zero.
// Useful for testing.
func (m *Metrics) Reset() {
	m.sign.reset()
	m.signHash.reset()
	m.recover.reset()
}
