package async

import "github.com/webriots/coro"

// Stackful adapts a full-stack function to the invoke contract. The
// function runs on its own coroutine stack, so ordinary locals do
// survive its awaits; use it when a body has too many segments to be
// worth writing as an explicit state machine. Every await suspends
// by returning control to the caller of Invoke, never by blocking
// the thread, so a Stackful composes with record coroutines in
// either direction.
type Stackful struct {
	resume func(struct{}) (Status, bool)
	cancel func()
	status Status
}

// NewStackful creates a stackful coroutine. fn receives an await
// function that suspends until its condition reports true, polling
// it once per Invoke. fn does not start running until the first
// Invoke.
func NewStackful(fn func(await func(Cond))) *Stackful {
	s := &Stackful{status: Blocked}

	resume, cancel := coro.New(
		func(yield func(Status) struct{}, _ func() struct{}) Status {
			await := func(cond Cond) {
				for !cond() {
					yield(Blocked)
				}
			}
			fn(await)
			return Completed
		},
	)

	s.resume = resume
	s.cancel = cancel
	return s
}

// Invoke runs the function to its next unsatisfied await or to
// completion. Invoking after completion returns Completed. A panic
// inside the function surfaces here, wrapped with its stack by the
// underlying coro runtime.
func (s *Stackful) Invoke() Status {
	if s.status == Completed {
		return Completed
	}
	if _, running := s.resume(struct{}{}); !running {
		s.status = Completed
	}
	return s.status
}

// Done returns a condition that advances the coroutine one step per
// poll and passes once it completes, mirroring Done for record
// coroutines.
func (s *Stackful) Done() Cond {
	return func() bool { return s.Invoke() == Completed }
}

// Cancel tears down a suspended coroutine: its function observes a
// panic wrapping coro.ErrCanceled at the current await. If the
// function does not recover, that panic propagates to the Cancel
// caller. Cancel after completion is a no-op.
func (s *Stackful) Cancel() {
	s.status = Completed
	s.cancel()
}
