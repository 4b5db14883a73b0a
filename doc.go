/*
Package microdds is the root of an in-process publish/subscribe,
request/response, and goal-oriented action bus modeled on ROS2-style
middleware, sized for cooperative-multitasking and embedded targets
rather than networked, multi-process ones.

The engine lives in bus; platform names the millisecond-clock and
task-yield collaborators the engine itself never imports. The
remaining top-level packages (env, slogx, signalx, cli, syncx, assert,
contextx, structures/set, patterns/retry) are general-purpose support
code carried over from the library this module grew out of. See
bus/doc.go for the engine's own design notes.
*/
package microdds
