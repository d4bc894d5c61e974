package async

// Status is the outward result of one coroutine invocation.
type Status uint8

const (
	// Blocked indicates the coroutine reached an await whose
	// condition is not yet satisfied. Control has returned to the
	// caller; invoking again resumes at the same await.
	Blocked Status = iota

	// Completed indicates the coroutine body ran to its end. The
	// record is terminal until Init is called.
	Completed
)

// String returns the status name for debugging.
func (s Status) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Completed:
		return "completed"
	}
	return "invalid"
}

// Point identifies where a coroutine resumes within its own body.
// Points are produced and consumed by a single coroutine function; a
// Point from one function is meaningless to another.
type Point uint32

// Start is the resume point of a freshly initialized record.
const Start Point = 0

// Func is a coroutine body. It is called with its record positioned
// at the current resume point and returns Blocked when an await did
// not pass, or the result of End once the body is finished. Bodies
// are written as a state machine over the resume point, one arm per
// segment:
//
//	func pump(a *async.Async[pumpStack]) async.Status {
//		stack := a.Stack
//		for {
//			switch a.At() {
//			case async.Start:
//				stack.n = load()
//				a.Goto(drain)
//			case drain:
//				if !a.Await(async.Nonzero(stack.ready), flush) {
//					return async.Blocked
//				}
//			case flush:
//				store(stack.n)
//				return a.End()
//			}
//		}
//	}
type Func[S any] func(*Async[S]) Status

// Async is an execution record: the persistent state that makes one
// coroutine invocation chain resumable. It pairs a resume point with
// a borrowed pointer to a caller-allocated stack block of type S.
// The record never allocates or frees the stack block; the caller
// must keep it alive until the coroutine completes.
//
// A record is a plain value so a child coroutine's record can live
// inside its parent's stack block. Each logical coroutine instance
// needs its own record; two records for the same Func are fully
// independent. Records must not be copied once in use.
type Async[S any] struct {
	noCopy noCopy
	pc     Point
	done   bool

	// Stack is the coroutine's local state. Any value that must
	// survive an await lives here, never in a per-call local: the
	// body is re-entered from scratch on every invocation, so its
	// locals are created anew each time.
	Stack *S
}

// New returns a record borrowing stack, positioned at Start.
func New[S any](stack *S) Async[S] {
	return Async[S]{Stack: stack}
}

// Init resets the record to Start, discarding any prior progress
// including a Completed mark. The stack block is left untouched.
func (a *Async[S]) Init() {
	a.pc = Start
	a.done = false
}

// At returns the current resume point.
func (a *Async[S]) At() Point {
	return a.pc
}

// Goto moves the resume point to p without suspending.
func (a *Async[S]) Goto(p Point) {
	a.pc = p
}

// Await is the suspension primitive. If cond reports false the
// record stays at its current point and Await returns false; the
// body must then return Blocked to its caller. If cond reports true
// the record advances to next and execution continues within the
// same invocation, without another trip through the caller.
//
// cond is evaluated exactly once per invocation that reaches the
// await, so it may consume on success (a semaphore unit, a queue
// element). Nothing about the reason for blocking is remembered
// between invocations beyond the resume point itself; cond must
// re-derive its answer from state reachable at poll time, typically
// through the stack block.
//
// An await must open its own segment. The resume point names the
// switch arm, so anything placed before the await in the same arm
// runs again on every blocked re-entry.
func (a *Async[S]) Await(cond Cond, next Point) bool {
	if !cond() {
		return false
	}
	a.pc = next
	return true
}

// End marks the record terminal and returns Completed. Bodies return
// it from their final segment.
func (a *Async[S]) End() Status {
	a.done = true
	return Completed
}

// Done reports whether the record has completed.
func (a *Async[S]) Done() bool {
	return a.done
}

// Invoke runs fn from the record's resume point until it blocks or
// completes. A Blocked result means the caller should invoke again
// once the awaited condition may have changed; there is no implicit
// retry and no blocking wait. Invoking a completed record returns
// Completed without calling the body; Init is the only way to
// restart one.
func Invoke[S any](fn Func[S], a *Async[S]) Status {
	if a.done {
		return Completed
	}
	return fn(a)
}
