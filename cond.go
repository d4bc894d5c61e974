package async

import "context"

// Cond is an await condition: it reports whether execution may
// proceed past a suspension point. A condition is polled once per
// invocation that reaches its await and must answer from state
// reachable at poll time, since the record remembers nothing about
// why it blocked beyond the resume point.
type Cond func() bool

// Flag awaits *b becoming true.
func Flag(b *bool) Cond {
	return func() bool { return *b }
}

// Nonzero awaits *n becoming nonzero, the usual shape of waiting on
// a lock word or completion flag released by an external event.
func Nonzero(n *int) Cond {
	return func() bool { return *n != 0 }
}

// Done awaits completion of a child coroutine, advancing it by one
// step per poll. The child record is typically a field of the
// parent's stack block and must be Init-ed before the first poll.
// The parent stays blocked for exactly as long as the child reports
// Blocked; any result the child produces is read from the child's
// stack block after completion.
func Done[S any](fn Func[S], child *Async[S]) Cond {
	return func() bool { return Invoke(fn, child) == Completed }
}

// Expired awaits context expiry. The engine has no cancellation of
// its own; a body that wants to be cancellable polls this at segment
// boundaries and transitions to its cleanup segment.
func Expired(ctx context.Context) Cond {
	return func() bool { return ctx.Err() != nil }
}
