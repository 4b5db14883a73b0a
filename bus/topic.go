package bus

import "reflect"

// Publish delivers payload to every current subscriber of name, inline,
// on the caller's goroutine, in subscription order. If the topic
// doesn't exist yet, it's auto-created (subject to TopicCapacity) before
// delivery: a publish to a brand-new name with no subscribers still
// succeeds, it just delivers to nobody.
//
// Returns false if the name or payload is invalid, the topic table is
// full, or the registry lock couldn't be acquired in time. No state
// changes in any of those cases. Publish has no timeout parameter of its
// own; it always uses the registry's configured lock timeout.
func (r *Registry) Publish(name string, payload []byte) bool {
	if err := validateName(name); err != nil {
		return false
	}
	if err := validatePayload(payload); err != nil {
		return false
	}
	ok, acquired := withLockT(r.mu, r.lockTimeout, func() bool {
		t, exists := r.topics.Get(name)
		if !exists {
			if r.topics.Full() {
				r.log.Warn("publish: topic table full", "err", ErrTableFull, "topic", name)
				return false
			}
			t = &topicRecord{name: name}
			r.topics.Insert(name, t)
		}
		for _, sub := range t.subs {
			if sub.cb == nil {
				continue
			}
			sub.cb(name, payload, sub.ctx)
		}
		return true
	})
	if !acquired {
		r.logLockTimeout("publish")
	}
	return acquired && ok
}

// Subscribe registers cb to receive future Publish calls on name,
// auto-creating the topic if needed. Fails if the topic's
// subscriber slots (SubscriberCapacity) or the topic table itself
// (TopicCapacity) are exhausted, or cb is nil.
func (r *Registry) Subscribe(name string, cb TopicHandler, ctx any) bool {
	if err := validateName(name); err != nil {
		return false
	}
	if cb == nil {
		r.log.Debug("subscribe failed", "err", ErrNilCallback, "topic", name)
		return false
	}
	ok, acquired := withLockT(r.mu, r.lockTimeout, func() bool {
		t, exists := r.topics.Get(name)
		if !exists {
			if r.topics.Full() {
				r.log.Debug("subscribe failed", "err", ErrTableFull, "topic", name)
				return false
			}
			t = &topicRecord{name: name}
			r.topics.Insert(name, t)
		}
		if len(t.subs) >= SubscriberCapacity {
			return false
		}
		t.subs = append(t.subs, subscriberSlot{cb: cb, ctx: ctx})
		return true
	})
	return acquired && ok
}

// Unsubscribe removes the first subscriber slot on name whose callback
// matches cb, shifting later slots down to preserve order. A no-op if the
// topic or callback isn't found, including if the lock can't be
// acquired, since this is best-effort cleanup rather than a guaranteed
// operation.
//
// Go function values aren't comparable with ==, so the match is made on
// the underlying code pointer via reflect: two distinct closures
// wrapping the same function literal will compare equal.
func (r *Registry) Unsubscribe(name string, cb TopicHandler) {
	if cb == nil {
		return
	}
	target := reflect.ValueOf(cb).Pointer()
	withLock(r.mu, r.lockTimeout, func() {
		t, ok := r.topics.Get(name)
		if !ok {
			return
		}
		for i, sub := range t.subs {
			if sub.cb == nil {
				continue
			}
			if reflect.ValueOf(sub.cb).Pointer() == target {
				t.subs = append(t.subs[:i], t.subs[i+1:]...)
				return
			}
		}
	})
}
