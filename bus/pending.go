package bus

import "time"

// ProcessPending drains completions owned by task: every Pending record
// with ready=true and a matching task identity has its completion
// callback invoked, on the caller's own goroutine, under the registry
// lock, and is then removed. Records belonging to other tasks
// are left untouched; this is the mechanism that routes an async
// service's response or an action's terminal result back to whichever
// goroutine originated the request.
//
// timeout is advisory: a registry with no pending records at
// all returns as soon as the lock is acquired, and the lock acquisition
// itself is still bounded by timeout (or the registry default).
func (r *Registry) ProcessPending(task TaskID, timeout time.Duration) {
	withLock(r.mu, r.timeout(timeout), func() {
		for _, id := range r.pending.Keys() {
			p, ok := r.pending.Get(id)
			if !ok || !p.ready || p.task != task {
				continue
			}
			if p.isAction {
				if p.resultCB != nil {
					p.resultCB(p.targetName, p.response(), p.actionState, p.ctx)
				}
			} else {
				if p.asyncCB != nil {
					p.asyncCB(p.targetName, p.response(), p.ctx)
				}
			}
			r.pending.Remove(id)
		}
	})
}
