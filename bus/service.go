package bus

import "time"

// CreateService registers a handler under name. Fails on a
// duplicate name, a full service table, a nil handler, or an invalid
// name.
func (r *Registry) CreateService(name string, handler ServiceHandler, mode ServiceMode, ctx any) bool {
	if err := validateName(name); err != nil {
		return false
	}
	if handler == nil {
		return false
	}
	ok, acquired := withLockT(r.mu, r.lockTimeout, func() bool {
		if r.services.Has(name) {
			r.log.Debug("create_service failed", "err", ErrAlreadyExists, "service", name)
			return false
		}
		if r.services.Full() {
			r.log.Debug("create_service failed", "err", ErrTableFull, "service", name)
			return false
		}
		return r.services.Insert(name, &serviceRecord{name: name, handler: handler, mode: mode, ctx: ctx})
	})
	return acquired && ok
}

// CallSync locates the service, snapshots its handler and context, and
// then releases the registry lock before invoking the handler on the
// caller's own goroutine: otherwise the handler calling any other bus
// operation would deadlock against the very lock that dispatched it.
// Returns the handler's response and verdict.
//
// timeout bounds only the initial lock acquisition; the
// handler invocation itself is un-timed, by design, since the handler's
// own caller is in the best position to bound its total work if needed.
func (r *Registry) CallSync(name string, req []byte, timeout time.Duration) ([]byte, bool) {
	if err := validatePayload(req); err != nil {
		return nil, false
	}
	type snapshot struct {
		handler ServiceHandler
		ctx     any
	}
	snap, acquired := withLockT(r.mu, r.timeout(timeout), func() snapshot {
		s, ok := r.services.Get(name)
		if !ok {
			r.log.Debug("call_sync failed", "err", ErrNotFound, "service", name)
			return snapshot{}
		}
		return snapshot{handler: s.handler, ctx: s.ctx}
	})
	if !acquired || snap.handler == nil {
		return nil, false
	}
	return snap.handler(req, snap.ctx)
}

// CallAsync locates the service and invokes its handler, then, on
// success, stamps a Pending record with task's identity so a later
// ProcessPending(task, ...) call delivers the response via cb.
//
// Like CallSync, this snapshots the handler and releases the lock before
// invoking it, the conservative choice of applying the same
// snapshot-and-release discipline to both the sync and async dispatch
// paths, then re-acquires the lock only briefly to record the Pending
// entry on success.
func (r *Registry) CallAsync(task TaskID, name string, req []byte, cb AsyncHandler, ctx any, timeout time.Duration) bool {
	if err := validatePayload(req); err != nil {
		return false
	}
	if cb == nil {
		return false
	}
	type snapshot struct {
		handler ServiceHandler
		hctx    any
	}
	snap, acquired := withLockT(r.mu, r.timeout(timeout), func() snapshot {
		s, ok := r.services.Get(name)
		if !ok {
			r.log.Debug("call_async failed", "err", ErrNotFound, "service", name)
			return snapshot{}
		}
		return snapshot{handler: s.handler, hctx: s.ctx}
	})
	if !acquired || snap.handler == nil {
		return false
	}

	resp, ok := snap.handler(req, snap.hctx)
	if !ok {
		return false
	}

	acquired = withLock(r.mu, r.lockTimeout, func() {
		if r.pending.Full() {
			r.log.Warn("call_async: pending table full, response dropped", "err", ErrTableFull, "service", name)
			ok = false
			return
		}
		r.pendingSeq++
		rec := &pendingRecord{
			id:         r.pendingSeq,
			targetName: name,
			task:       task,
			isAction:   false,
			asyncCB:    cb,
			ctx:        ctx,
			ready:      true,
		}
		rec.setResponse(resp)
		r.pending.Insert(rec.id, rec)
	})
	return acquired && ok
}
