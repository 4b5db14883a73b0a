package bus

import (
	"context"
	"sync/atomic"
)

// TaskID is an opaque handle identifying the cooperative task (goroutine)
// that originated an async service call or action goal. The bus has no
// way to infer this on its own, since Go doesn't expose goroutine
// identity, so callers obtain one explicitly and thread it through
// CallAsync, SendGoal, and ProcessPending.
type TaskID uint64

// NewTask allocates a fresh TaskID from this Registry's own counter,
// distinct from every other ID the Registry has handed out since it was
// constructed or last Reset (Reset restarts the counter, so IDs issued
// before a Reset can be issued again after it). Call it once per
// cooperative task and reuse the result for every bus call that task
// makes.
func (r *Registry) NewTask() TaskID {
	return TaskID(atomic.AddUint64(&r.taskSeq, 1))
}

type taskIDKey struct{}

// WithTask attaches a TaskID to ctx, for callers that prefer to carry
// task identity on a context.Context instead of threading a TaskID
// parameter through every call.
func WithTask(ctx context.Context, id TaskID) context.Context {
	return context.WithValue(ctx, taskIDKey{}, id)
}

// TaskFromContext retrieves a TaskID set by WithTask. The second return
// is false if ctx carries none.
func TaskFromContext(ctx context.Context) (TaskID, bool) {
	id, ok := ctx.Value(taskIDKey{}).(TaskID)
	return id, ok
}
