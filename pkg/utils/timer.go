package utils

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase is one named, timed span within a Timer: build, self_traverse,
// ray_traverse, and so on.
type Phase struct {
	Name      string
	StartTime time.Time
	Duration  time.Duration
	completed bool
}

// PhaseTimer is the handle returned by Timer.Start; Stop completes the
// phase. Safe to call from a defer.
type PhaseTimer struct {
	timer     *Timer
	phaseName string
}

// Stop stops the phase and records its duration. Only the first call has
// effect.
func (pt *PhaseTimer) Stop() time.Duration {
	return pt.timer.StopPhase(pt.phaseName)
}

// Timer records a flat sequence of named phases and reports them through
// a Logger. It is safe for concurrent use, though the benchmark CLI runs
// its phases sequentially.
type Timer struct {
	mu        sync.RWMutex
	name      string
	startTime time.Time
	order     []string
	phases    map[string]*Phase
	logger    Logger
	enabled   bool
	clock     Clock
}

// TimerOption configures a Timer instance.
type TimerOption func(*Timer)

// WithLogger directs summary output to the given logger.
func WithLogger(logger Logger) TimerOption {
	return func(t *Timer) {
		t.logger = logger
	}
}

// WithEnabled sets whether the timer records anything. A disabled timer
// turns every call into a no-op.
func WithEnabled(enabled bool) TimerOption {
	return func(t *Timer) {
		t.enabled = enabled
	}
}

// WithClock sets a custom clock for testability.
func WithClock(clock Clock) TimerOption {
	return func(t *Timer) {
		t.clock = clock
	}
}

// NewTimer creates a new Timer with the given name and options.
func NewTimer(name string, opts ...TimerOption) *Timer {
	t := &Timer{
		name:    name,
		phases:  make(map[string]*Phase),
		enabled: true,
		clock:   NewRealClock(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.startTime = t.clock.Now()
	return t
}

// Start begins timing a new phase and returns its handle.
func (t *Timer) Start(phaseName string) *PhaseTimer {
	pt := &PhaseTimer{timer: t, phaseName: phaseName}
	if !t.enabled {
		return pt
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.phases[phaseName] = &Phase{
		Name:      phaseName,
		StartTime: t.clock.Now(),
	}
	t.order = append(t.order, phaseName)
	return pt
}

// StopPhase completes the named phase and returns its duration. Stopping
// an unknown or already-completed phase returns the recorded duration
// (zero for unknown) without modifying anything.
func (t *Timer) StopPhase(phaseName string) time.Duration {
	if !t.enabled {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	phase, ok := t.phases[phaseName]
	if !ok {
		return 0
	}
	if phase.completed {
		return phase.Duration
	}

	phase.Duration = t.clock.Since(phase.StartTime)
	phase.completed = true
	return phase.Duration
}

// GetDuration returns the recorded duration of a phase, zero if unknown.
func (t *Timer) GetDuration(phaseName string) time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if phase, ok := t.phases[phaseName]; ok {
		return phase.Duration
	}
	return 0
}

// TotalDuration returns the time elapsed since the timer was created.
func (t *Timer) TotalDuration() time.Duration {
	return t.clock.Since(t.startTime)
}

// Phases returns copies of all phases in start order.
func (t *Timer) Phases() []Phase {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Phase, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, *t.phases[name])
	}
	return out
}

// Summary returns a formatted multi-line summary of all phases.
func (t *Timer) Summary() string {
	if !t.enabled {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s timing ===\n", t.name)
	for i, name := range t.order {
		fmt.Fprintf(&sb, "%d. %s: %v\n", i+1, name, t.phases[name].Duration)
	}
	fmt.Fprintf(&sb, "total: %v\n", t.TotalDuration())
	return sb.String()
}

// PrintSummary logs one line per phase at info level, plus the total.
// Does nothing when the timer is disabled or has no logger.
func (t *Timer) PrintSummary() {
	if !t.enabled || t.logger == nil {
		return
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	t.logger.Info("=== %s timing ===", t.name)
	for i, name := range t.order {
		t.logger.Info("%d. %s: %v", i+1, name, t.phases[name].Duration)
	}
	t.logger.Info("total: %v", t.TotalDuration())
}

// Reset clears all phases and restarts the total-duration clock.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.phases = make(map[string]*Phase)
	t.order = nil
	t.startTime = t.clock.Now()
}
