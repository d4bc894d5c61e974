package async

// Sema is a counting semaphore for coroutines. Waiting is an await
// condition rather than a blocking call: a waiter consumes a unit
// the moment its condition is polled while one is available. There
// is no waiter queue and no wakeup ordering; contending coroutines
// race on their next invocation.
type Sema struct {
	noCopy noCopy
	v      int
}

// Init sets the number of available units, discarding any previous
// value.
func (s *Sema) Init(n int) {
	s.v = n
}

// Signal releases one unit.
func (s *Sema) Signal() {
	s.v++
}

// Wait returns a condition that passes once a unit is available,
// consuming it. Await polls the condition once per invocation, so a
// unit is never consumed twice for one suspension point.
func (s *Sema) Wait() Cond {
	return func() bool {
		if s.v == 0 {
			return false
		}
		s.v--
		return true
	}
}

// Value returns the number of available units.
func (s *Sema) Value() int {
	return s.v
}
