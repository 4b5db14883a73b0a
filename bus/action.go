package bus

import "time"

// CreateAction registers an action under name with its three lifecycle
// callbacks. The cancel-notify callback is optional (may be nil).
// Fails on a duplicate name, a full action table, a nil goal or execute
// callback, or an invalid name.
func (r *Registry) CreateAction(name string, goalCB GoalHandler, execCB ExecuteHandler, cancelCB CancelHandler, ctx any) bool {
	if err := validateName(name); err != nil {
		return false
	}
	if goalCB == nil || execCB == nil {
		return false
	}
	ok, acquired := withLockT(r.mu, r.lockTimeout, func() bool {
		if r.actions.Has(name) {
			r.log.Debug("create_action failed", "err", ErrAlreadyExists, "action", name)
			return false
		}
		if r.actions.Full() {
			r.log.Debug("create_action failed", "err", ErrTableFull, "action", name)
			return false
		}
		return r.actions.Insert(name, &actionRecord{
			name:     name,
			goalCB:   goalCB,
			execCB:   execCB,
			cancelCB: cancelCB,
			ctx:      ctx,
			state:    Accepted,
		})
	})
	return acquired && ok
}

// SendGoal submits a new goal to action. The goal-accept predicate is
// invoked synchronously under the registry lock and must not re-enter the
// bus; if it accepts, the goal bytes are copied into the action's fixed
// buffer, the action becomes active, and a Pending record is enqueued
// under task's identity so a later ProcessPending(task, ...) delivers the
// eventual result via resultCB.
//
// Fails with no state change if the action is unknown, already active
// (at most one outstanding goal per name), the goal exceeds
// PayloadCapacity, or the predicate rejects it.
func (r *Registry) SendGoal(task TaskID, name string, goal []byte, fbCB FeedbackHandler, resultCB ResultHandler, ctx any, timeout time.Duration) bool {
	if err := validatePayload(goal); err != nil {
		return false
	}
	ok, acquired := withLockT(r.mu, r.timeout(timeout), func() bool {
		a, exists := r.actions.Get(name)
		if !exists {
			r.log.Debug("send_goal failed", "err", ErrNotFound, "action", name)
			return false
		}
		if a.active {
			r.log.Debug("send_goal failed", "err", ErrAlreadyActive, "action", name)
			return false
		}
		if a.goalCB == nil {
			return false
		}
		if !a.goalCB(goal, a.ctx) {
			r.log.Debug("send_goal rejected", "err", ErrGoalRejected, "action", name)
			return false
		}
		a.goalLen = copy(a.goalData[:], goal)
		a.active = true
		a.state = Accepted
		a.cancelRequested = false

		if r.pending.Full() {
			// The goal is still accepted; a full pending table only means
			// the eventual result has nowhere to land.
			r.log.Warn("send_goal: pending table full, result will be dropped", "action", name)
			return true
		}
		r.pendingSeq++
		rec := &pendingRecord{
			id:         r.pendingSeq,
			targetName: name,
			task:       task,
			isAction:   true,
			resultCB:   resultCB,
			fbCB:       fbCB,
			ctx:        ctx,
		}
		r.pending.Insert(rec.id, rec)
		return true
	})
	return acquired && ok
}

// CancelGoal cooperatively requests early termination of action's
// current goal: it sets cancel_requested and, if provided, invokes the
// cancel-notify callback under the registry lock. Actual
// termination happens on the next ProcessActions tick once the execute
// step observes the flag and returns a terminal state. Fails if the
// action is unknown or not currently active.
func (r *Registry) CancelGoal(name string, timeout time.Duration) bool {
	ok, acquired := withLockT(r.mu, r.timeout(timeout), func() bool {
		a, exists := r.actions.Get(name)
		if !exists || !a.active {
			return false
		}
		a.cancelRequested = true
		if a.cancelCB != nil {
			a.cancelCB(a.ctx)
		}
		return true
	})
	return acquired && ok
}

// SendFeedback routes an in-progress update to the Pending record
// tracking action, if one exists. Feedback is lossy by design: if no
// Pending record is found, because the goal already finished or was
// never accepted, the call is a silent discard rather than an error.
func (r *Registry) SendFeedback(name string, payload []byte) bool {
	if err := validatePayload(payload); err != nil {
		return false
	}
	return withLock(r.mu, r.lockTimeout, func() {
		r.pending.Range(func(_ uint64, p *pendingRecord) bool {
			if p.isAction && p.targetName == name && p.fbCB != nil {
				p.fbCB(name, payload, p.ctx)
				return false
			}
			return true
		})
	})
}

// IsGoalCanceled reports whether CancelGoal has been called for action's
// current goal. Returns false for an unknown action.
func (r *Registry) IsGoalCanceled(name string) bool {
	result, acquired := withLockT(r.mu, r.lockTimeout, func() bool {
		a, exists := r.actions.Get(name)
		if !exists {
			return false
		}
		return a.cancelRequested
	})
	return acquired && result
}

// ProcessActions drives one execute step for every action currently
// active and in a non-terminal state. A step returning Executing
// leaves the action unchanged for the next tick; a terminal result
// retires the action and, if a Pending record is tracking it, delivers
// the result into that record and marks it ready for ProcessPending.
//
// Like CallSync, each execute step is snapshotted and invoked with the
// registry lock released, then the lock is reacquired briefly to commit
// the resulting state. This is what lets an execute step safely call
// IsGoalCanceled, SendFeedback, or any other bus operation without
// deadlocking against the lock that's driving it.
func (r *Registry) ProcessActions() {
	type step struct {
		a      *actionRecord
		execCB ExecuteHandler
		goal   []byte
		ctx    any
	}
	var steps []step
	withLock(r.mu, r.lockTimeout, func() {
		for _, name := range r.actions.Keys() {
			a, ok := r.actions.Get(name)
			if !ok || !a.active {
				continue
			}
			if a.state != Accepted && a.state != Executing {
				continue
			}
			steps = append(steps, step{a: a, execCB: a.execCB, goal: a.goal(), ctx: a.ctx})
		}
	})

	for _, s := range steps {
		result, state := s.execCB(s.goal, s.ctx)
		withLock(r.mu, r.lockTimeout, func() {
			s.a.state = state
			if state == Executing {
				return
			}
			s.a.active = false
			r.pending.Range(func(_ uint64, p *pendingRecord) bool {
				if p.isAction && p.targetName == s.a.name {
					p.setResponse(result)
					p.actionState = state
					p.ready = true
					return false
				}
				return true
			})
		})
	}
}

// ProcessServices is reserved for a future asynchronous service
// implementation; services are currently dispatched entirely within
// CallSync/CallAsync, so this is a documented no-op.
func (r *Registry) ProcessServices() {}
