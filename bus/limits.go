package bus

import "time"

// Fixed, compile-time capacities. The registry never grows a table past
// these sizes, regardless of platform: every table is backed by a
// slottable.Table of this capacity, allocated at construction and
// allocated afresh by Reset.
const (
	TopicCapacity      = 32
	ServiceCapacity    = 24
	ActionCapacity     = 16
	PendingCapacity    = 16
	SubscriberCapacity = 8   // subscribers per topic
	PayloadCapacity    = 256 // bytes

	minNameLength = 2
	maxNameLength = 48 // exclusive bound: len(name) must be < this
)

// DefaultLockTimeout is the bound every public Registry entry point uses
// to acquire the coarse registry mutex unless overridden by the
// MICRODDS_LOCK_TIMEOUT environment variable (read by New) or with
// WithLockTimeout: a failed acquisition fails the operation with no side
// effects, rather than blocking indefinitely.
var DefaultLockTimeout = 100 * time.Millisecond
