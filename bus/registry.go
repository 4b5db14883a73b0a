package bus

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/microdds/microdds/bus/internal/slottable"
	"github.com/microdds/microdds/env"
)

// Registry is the explicit, process-wide-singleton-or-not bus object: an
// explicit object that callers pass around or obtain through a single
// well-defined accessor, with the singleton a convenience built over the
// explicit form rather than the only form. Use New for an independent
// instance, or Instance for the shared global.
type Registry struct {
	mu          *timedMutex
	lockTimeout time.Duration
	log         *slog.Logger
	running     bool

	topics   *slottable.Table[string, *topicRecord]
	services *slottable.Table[string, *serviceRecord]
	actions  *slottable.Table[string, *actionRecord]
	pending  *slottable.Table[uint64, *pendingRecord]

	taskSeq    uint64
	pendingSeq uint64
}

// Option configures a Registry at construction.
type Option func(*Registry)

// WithLockTimeout overrides DefaultLockTimeout for every call against
// this Registry that doesn't supply its own timeout.
func WithLockTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.lockTimeout = d
	}
}

// WithLogger injects a *slog.Logger for the registry's best-effort
// diagnostic logging, never part of the contract any caller can depend
// on. Without this option the registry logs to io.Discard, so a Registry
// never requires a live sink; the serial/terminal log destination stays
// an external collaborator the registry doesn't own. log must not be nil.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

func defaultLockTimeout() time.Duration {
	return env.Duration("MICRODDS_LOCK_TIMEOUT", DefaultLockTimeout)
}

// New constructs an independent Registry with all tables empty and the
// running flag set.
func New(opts ...Option) *Registry {
	r := &Registry{
		mu:          newTimedMutex(),
		lockTimeout: defaultLockTimeout(),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		running:     true,
	}
	r.allocateTables()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) allocateTables() {
	r.topics = slottable.New[string, *topicRecord](TopicCapacity)
	r.services = slottable.New[string, *serviceRecord](ServiceCapacity)
	r.actions = slottable.New[string, *actionRecord](ActionCapacity)
	r.pending = slottable.New[uint64, *pendingRecord](PendingCapacity)
}

var (
	instance     *Registry
	instanceOnce sync.Once
)

// Instance returns a process-wide singleton Registry, constructed on
// first use with New(). Prefer New directly in tests so each test gets a
// fresh registry.
func Instance() *Registry {
	instanceOnce.Do(func() {
		instance = New()
	})
	return instance
}

// logLockTimeout records a failed lock acquisition for op at Debug level.
// Lock contention is expected under load and never fatal, so this
// is diagnostic only, never promoted past Debug.
func (r *Registry) logLockTimeout(op string) {
	r.log.Debug("registry lock acquisition timed out", "err", ErrLockTimeout, "op", op)
}

// timeout resolves the effective lock-acquisition deadline for a call:
// the caller-supplied value if positive, otherwise the registry's
// configured default.
func (r *Registry) timeout(requested time.Duration) time.Duration {
	if requested > 0 {
		return requested
	}
	return r.lockTimeout
}

// Reset clears every table and counter and restores the running flag.
// After Reset the bus is indistinguishable from a freshly constructed
// Registry with the same options.
func (r *Registry) Reset() {
	blocking := &blockingAdapter{m: r.mu}
	blocking.Lock()
	defer blocking.Unlock()

	r.running = false
	r.allocateTables()
	r.taskSeq = 0
	r.pendingSeq = 0
	r.running = true
	r.log.Debug("registry reset")
}
