package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned by Allow while calls are being rejected.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker guards a remote dependency that fails in bursts, such as
// a rate-limited data API. A run of consecutive failures opens the
// breaker; once the cooldown elapses a bounded number of probe requests
// decides whether it closes again.
type CircuitBreaker struct {
	mu    sync.Mutex
	clock func() time.Time

	failureLimit int
	cooldown     time.Duration
	probeLimit   int

	state    CircuitState
	failures int
	openedAt time.Time

	// half-open bookkeeping, reset on every transition
	probesInFlight int
	probeWins      int
}

// NewCircuitBreaker builds a closed breaker. Out-of-range arguments fall
// back to the package defaults.
func NewCircuitBreaker(failureLimit int, cooldown time.Duration, probeLimit int) *CircuitBreaker {
	cfg := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{
		FailureThreshold: failureLimit,
		OpenTimeout:      cooldown,
		HalfOpenMaxReq:   probeLimit,
	})

	return &CircuitBreaker{
		clock:        time.Now,
		failureLimit: cfg.FailureThreshold,
		cooldown:     cfg.OpenTimeout,
		probeLimit:   cfg.HalfOpenMaxReq,
		state:        CircuitStateClosed,
	}
}

// Allow reports whether a call may proceed. In the half-open state it
// also claims one of the probe slots, so every accepted call must be
// followed by RecordSuccess or RecordFailure.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.advance(b.clock())

	switch b.state {
	case CircuitStateOpen:
		return ErrCircuitOpen
	case CircuitStateHalfOpen:
		if b.probesInFlight >= b.probeLimit {
			return ErrCircuitOpen
		}
		b.probesInFlight++
	}

	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		if b.probesInFlight > 0 {
			b.probesInFlight--
		}
		b.probeWins++
		if b.probeWins >= b.probeLimit && b.probesInFlight == 0 {
			b.transition(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.failureLimit {
			b.transition(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.transition(CircuitStateOpen)
	case CircuitStateOpen:
		// a straggler failing while open restarts the cooldown
		b.openedAt = b.clock()
	}
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.advance(b.clock())

	return b.state
}

// advance performs the only time-driven transition, open to half-open.
// Must be called with the lock held.
func (b *CircuitBreaker) advance(now time.Time) {
	if b.state == CircuitStateOpen && now.Sub(b.openedAt) >= b.cooldown {
		b.transition(CircuitStateHalfOpen)
	}
}

func (b *CircuitBreaker) transition(next CircuitState) {
	b.state = next
	b.probesInFlight = 0
	b.probeWins = 0

	switch next {
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	case CircuitStateOpen:
		b.openedAt = b.clock()
	}
}
