// Package async provides stackless coroutines: functions that
// execute in segments separated by suspension points, resuming later
// from where they left off without holding any state on the call
// stack. A suspended coroutine never blocks its thread; a blocked
// invocation returns to the caller immediately, and the caller
// decides when to invoke again.
//
// Key components:
//
//   - Async: The execution record that makes one coroutine
//     invocation chain resumable. It pairs a resume point with a
//     borrowed, caller-owned stack block holding every local value
//     that must survive a suspension.
//
//   - Func/Invoke: The coroutine body contract and the single-step
//     driver. Bodies are explicit state machines over the record's
//     resume point and report Blocked or Completed to their caller.
//
//   - Cond: The unified suspension primitive. Awaiting a predicate
//     and awaiting a child coroutine are the same operation; a child
//     is a condition that advances the child one step per poll.
//
//   - Synchronization primitives: Sema, Mutex, WaitGroup and Queue,
//     whose wait operations are conditions rather than blocking
//     calls.
//
//   - Stackful: A bridge that adapts a full-stack coroutine (built
//     on github.com/webriots/coro) to the same Blocked/Completed
//     invoke contract.
package async
