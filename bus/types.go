package bus

// TopicHandler receives a payload published to a subscribed topic. It
// runs inline, on the publisher's goroutine, while the registry lock is
// held, so it must not call back into the Registry.
type TopicHandler func(topic string, payload []byte, ctx any)

// ServiceMode records whether a service is meant to be called via
// CallSync or via CallAsync. It is stored with the service only: neither
// CallSync nor CallAsync checks it, so either can call any service.
type ServiceMode int

const (
	Sync ServiceMode = iota
	Async
)

func (m ServiceMode) String() string {
	if m == Async {
		return "async"
	}
	return "sync"
}

// ServiceHandler computes a response for a request. It returns the
// response payload and a success verdict; a false verdict means the call
// failed for request-specific reasons (the handler is never invoked at
// all for registry-level failures like an unknown service name).
type ServiceHandler func(req []byte, ctx any) (resp []byte, ok bool)

// AsyncHandler is delivered a service's response by ProcessPending, on
// the goroutine that originally called CallAsync.
type AsyncHandler func(service string, resp []byte, ctx any)

// ActionState is one of the five states in the action lifecycle.
type ActionState int

const (
	Accepted ActionState = iota
	Executing
	Succeeded
	Canceled
	Aborted
)

func (s ActionState) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Executing:
		return "executing"
	case Succeeded:
		return "succeeded"
	case Canceled:
		return "canceled"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether s retires the action.
func (s ActionState) Terminal() bool {
	return s == Succeeded || s == Canceled || s == Aborted
}

// GoalHandler is the goal-accept predicate invoked synchronously, under
// the registry lock, by SendGoal. It must not call back into the
// Registry.
type GoalHandler func(goal []byte, ctx any) bool

// ExecuteHandler performs one bounded step of an action's work. It
// returns Executing to request another call on the next ProcessActions
// tick, or a terminal ActionState with the final result payload: a
// resumable-generator shape where per-goal progress lives in ctx, not in
// the bus.
type ExecuteHandler func(goal []byte, ctx any) (result []byte, state ActionState)

// CancelHandler is an optional notification invoked, under the registry
// lock, each time CancelGoal is called on an active goal. It must not
// call back into the Registry.
type CancelHandler func(ctx any)

// FeedbackHandler receives progress updates routed by SendFeedback. It
// runs under the registry lock and must not call back into the Registry.
type FeedbackHandler func(action string, payload []byte, ctx any)

// ResultHandler is delivered an action's terminal result by
// ProcessPending, on the goroutine that originally called SendGoal.
type ResultHandler func(action string, result []byte, state ActionState, ctx any)
