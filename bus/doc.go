/*
Package bus implements an in-process publish/subscribe, request/response,
and goal-oriented action message bus for cooperatively-scheduled programs.

It's modeled on the communication shape of a robotics middleware (ROS2's
topics/services/actions), scaled down for a single address space with
fixed-capacity tables instead of dynamic growth: at most [TopicCapacity]
topics, [ServiceCapacity] services, [ActionCapacity] actions, and
[PendingCapacity] outstanding async responses, each with [SubscriberCapacity]
subscriber slots per topic and a [PayloadCapacity]-byte cap on every
message.

# Three Patterns

Topics are fan-out: Publish delivers a payload to every current
Subscribe-r, inline, on the publisher's own goroutine. There's no
buffering, so a slow subscriber slows every publisher of that topic, and a
publish with no subscribers is simply discarded.

Services are request/response against exactly one handler. CallSync
invokes the handler on the caller's goroutine and returns its result
directly. CallAsync invokes the handler immediately but defers delivery
of the result to a later ProcessPending call made by the same task that
initiated it (see "Cross-Task Routing" below).

Actions are long-running goals: SendGoal hands a goal to a registered
action's accept predicate; once accepted, ProcessActions drives the
action's execute step once per call until it reaches a terminal state
(succeeded, canceled, or aborted), with CancelGoal cooperatively
requesting early termination and SendFeedback routing progress updates to
the goal's pending result as they're produced.

# Locking Discipline

A single registry-wide mutex serializes all table access, acquired with a
bounded timeout on every public entry point (see [Option] WithLockTimeout).
Callback invocation follows two disciplines:
  - Short, non-reentrant callbacks (topic subscribers, feedback, cancel
    notification, the goal-accept predicate) run while the lock is held.
    These must never call back into the bus; doing so deadlocks.
  - Service handlers and action execute steps are snapshotted and invoked
    after releasing the lock, so they're free to call other bus
    operations.

# Cross-Task Routing

Go doesn't expose goroutine identity, so callers that want their async
service responses and action results routed back to them must obtain a
[TaskID] with [Registry.NewTask] and pass it to CallAsync/SendGoal and to
ProcessPending. ProcessPending only delivers completions whose recorded
task matches the one passed in.

# Singleton vs. Explicit Registry

[New] constructs an explicit, independent *Registry, the recommended
form, since it makes tests deterministic. [Instance] returns a
process-wide singleton built over the same constructor, for programs that
want one global bus without threading it through every call site.
*/
package bus
