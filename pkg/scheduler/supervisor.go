// Package scheduler drives update cycles: unbounded retries with a short fixed delay on failure,
// a long fixed interval after success.
package scheduler

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/iotd/pkg/domain"
)

//go:generate moq -out mocks/cycle.go -pkg mocks -skip-ensure -fmt goimports . Cycle

// attemptsPerRound is the repeater limit; when reached the round simply starts over,
// so the number of retries is unbounded
const attemptsPerRound = math.MaxInt32

// Cycle is a single update attempt
type Cycle interface {
	Run(ctx context.Context) (domain.Result, error)
}

// Params for NewSupervisor
type Params struct {
	Cycle      Cycle
	RetryDelay time.Duration // wait between failed attempts
	Interval   time.Duration // wait after a successful attempt
}

// Supervisor runs cycles one at a time, never concurrently.
// State machine: attempting -> idle -> attempting on success, attempting -> backoff -> attempting on failure.
type Supervisor struct {
	cycle      Cycle
	retryDelay time.Duration
	interval   time.Duration
	trigger    chan struct{}

	mu     sync.RWMutex
	status domain.Status
}

// NewSupervisor makes a Supervisor. Zero delays mean the defaults of 3s retry and 12h interval.
func NewSupervisor(p Params) *Supervisor {
	if p.RetryDelay == 0 {
		p.RetryDelay = 3 * time.Second
	}
	if p.Interval == 0 {
		p.Interval = 12 * time.Hour
	}
	return &Supervisor{
		cycle:      p.Cycle,
		retryDelay: p.RetryDelay,
		interval:   p.Interval,
		trigger:    make(chan struct{}, 1),
		status:     domain.Status{State: domain.StateIdle},
	}
}

// Run repeats update rounds forever. Returns only when ctx is canceled.
func (s *Supervisor) Run(ctx context.Context) error {
	lgr.Printf("[INFO] supervisor started, retry delay %v, update interval %v", s.retryDelay, s.interval)
	for {
		if err := s.RunOnce(ctx); err != nil {
			return err
		}

		lgr.Printf("[INFO] next update in %v", s.interval)
		if err := s.idle(ctx); err != nil {
			return err
		}
	}
}

// RunOnce runs cycles until one succeeds, waiting retryDelay after each failure.
// Returns nil on success or ctx error if canceled.
func (s *Supervisor) RunOnce(ctx context.Context) error {
	s.update(func(st *domain.Status) {
		st.State = domain.StateAttempting
		st.Attempts = 0
	})

	for {
		err := repeater.NewFixed(attemptsPerRound, s.retryDelay).Do(ctx, func() error {
			return s.attempt(ctx)
		})
		if err == nil {
			s.drainTrigger() // a trigger sent during the round is served by it
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Trigger wakes the supervisor from the idle wait. Returns false if a trigger is already pending.
func (s *Supervisor) Trigger() bool {
	select {
	case s.trigger <- struct{}{}:
		lgr.Printf("[INFO] immediate update requested")
		return true
	default:
		return false
	}
}

// Status returns a snapshot of the supervisor state
func (s *Supervisor) Status() domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// attempt runs a single cycle and records the outcome
func (s *Supervisor) attempt(ctx context.Context) error {
	s.update(func(st *domain.Status) {
		st.State = domain.StateAttempting
		st.Attempts++
		st.LastAttempt = time.Now()
	})

	res, err := s.cycle.Run(ctx)
	if err != nil {
		if ctx.Err() == nil {
			lgr.Printf("[WARN] update failed, %s error: %v, retry in %v", kindName(err), err, s.retryDelay)
		}
		s.update(func(st *domain.Status) {
			st.State = domain.StateBackoff
			st.Failures++
			st.LastError = err.Error()
		})
		return err
	}

	lgr.Printf("[INFO] image %s (%d bytes) saved to %s", res.ImageURL, res.Size, res.Path)
	s.update(func(st *domain.Status) {
		st.State = domain.StateIdle
		st.LastSuccess = time.Now()
		st.LastError = ""
		st.ImageURL = res.ImageURL
		st.ImagePath = res.Path
	})
	return nil
}

// idle waits for the update interval, a trigger or ctx cancellation
func (s *Supervisor) idle(ctx context.Context) error {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	case <-s.trigger:
		return nil
	}
}

func (s *Supervisor) drainTrigger() {
	select {
	case <-s.trigger:
	default:
	}
}

func (s *Supervisor) update(fn func(st *domain.Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.status)
}

func kindName(err error) string {
	if kind := domain.KindOf(err); kind != "" {
		return string(kind)
	}
	return "unknown"
}
