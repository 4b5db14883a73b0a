package bus

import "errors"

// Sentinel errors for the internal (error-returning) helpers that back
// the public boolean API. The public surface collapses all of these to a
// plain boolean, with no richer error code exposed to callers, but
// keeping them internally lets the registry log *why* an operation failed
// before discarding the detail.
var (
	ErrInvalidName    = errors.New("bus: invalid name")
	ErrInvalidPayload = errors.New("bus: invalid payload")
	ErrNilCallback    = errors.New("bus: nil callback")
	ErrTableFull      = errors.New("bus: table at capacity")
	ErrAlreadyExists  = errors.New("bus: entity already registered")
	ErrNotFound       = errors.New("bus: entity not found")
	ErrGoalRejected   = errors.New("bus: goal rejected by accept predicate")
	ErrAlreadyActive  = errors.New("bus: action already has an outstanding goal")
	ErrLockTimeout    = errors.New("bus: registry lock acquisition timed out")
)
