package clients

import (
	"sync"
	"time"

	"github.com/jsamuelsen/quotebook/internal/platform/config"
)

// State is the position of a Breaker.
type State int

const (
	// StateClosed lets every request through.
	StateClosed State = iota
	// StateOpen rejects requests until the cool-down has passed.
	StateOpen
	// StateHalfOpen lets a limited number of probes through.
	StateHalfOpen
)

var stateNames = [...]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half-open",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}

	return stateNames[s]
}

// Breaker stops calls to the quotes API after repeated failures.
//
//	closed    -> open       after MaxFailures failures in a row
//	open      -> half-open  once Timeout has passed since the last failure
//	half-open -> closed     after HalfOpenLimit successful probes
//	half-open -> open       on any failed probe
type Breaker struct {
	cfg config.CircuitBreakerConfig

	mu          sync.Mutex
	state       State
	failures    int
	successes   int
	probes      int
	lastFailure time.Time
	listener    func(from, to State)

	now func() time.Time
}

// NewBreaker creates a closed breaker.
func NewBreaker(cfg config.CircuitBreakerConfig) *Breaker {
	return &Breaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to be called, in its own goroutine, on every
// transition.
func (b *Breaker) OnStateChange(fn func(from, to State)) {
	b.mu.Lock()
	b.listener = fn
	b.mu.Unlock()
}

// Acquire asks for permission to send one request. On success the caller
// must invoke done exactly once with the outcome of the request.
func (b *Breaker) Acquire() (done func(failed bool), err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.lastFailure) < b.cfg.Timeout {
			return nil, ErrCircuitOpen
		}
		b.moveTo(StateHalfOpen)
		b.probes = 1
	case StateHalfOpen:
		if b.probes >= b.cfg.HalfOpenLimit {
			return nil, ErrCircuitOpen
		}
		b.probes++
	}

	var once sync.Once

	return func(failed bool) {
		once.Do(func() { b.record(failed) })
	}, nil
}

// State returns the current position.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

func (b *Breaker) record(failed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen && b.probes > 0 {
		b.probes--
	}

	if failed {
		b.lastFailure = b.now()

		switch b.state {
		case StateClosed:
			b.failures++
			if b.failures >= b.cfg.MaxFailures {
				b.moveTo(StateOpen)
			}
		case StateHalfOpen:
			b.moveTo(StateOpen)
		}

		return
	}

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.cfg.HalfOpenLimit {
			b.moveTo(StateClosed)
		}
	}
}

// moveTo requires b.mu.
func (b *Breaker) moveTo(to State) {
	from := b.state
	if from == to {
		return
	}

	b.state = to
	b.failures = 0
	b.successes = 0
	if to != StateHalfOpen {
		b.probes = 0
	}

	if b.listener != nil {
		go b.listener(from, to)
	}
}
