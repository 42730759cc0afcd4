package dispatcher

import "sync/atomic"

// Metrics counts dispatch turns by outcome.
type Metrics struct {
	executed     atomic.Int64
	fallback     atomic.Int64
	needsMoreKey atomic.Int64
	noMatch      atomic.Int64
}

// NewMetrics creates zeroed counters.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Record counts one turn's outcome.
func (m *Metrics) Record(o Outcome) {
	switch o {
	case Executed:
		m.executed.Add(1)
	case ExecutedFallback:
		m.fallback.Add(1)
	case NeedsMoreKey:
		m.needsMoreKey.Add(1)
	case NoMatch:
		m.noMatch.Add(1)
	}
}

// Executed returns the number of turns that executed an action,
// fallback turns included.
func (m *Metrics) Executed() int64 {
	return m.executed.Load() + m.fallback.Load()
}

// Fallback returns the number of degraded-mode executions.
func (m *Metrics) Fallback() int64 {
	return m.fallback.Load()
}

// NeedsMoreKey returns the number of turns left awaiting input.
func (m *Metrics) NeedsMoreKey() int64 {
	return m.needsMoreKey.Load()
}

// NoMatch returns the number of dead-end turns.
func (m *Metrics) NoMatch() int64 {
	return m.noMatch.Load()
}
