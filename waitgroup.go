package async

// WaitGroup counts outstanding pieces of work. Coroutines (or the
// external events completing on their behalf) call Done as pieces
// finish; a coroutine that needs the whole batch awaits Wait.
type WaitGroup struct {
	noCopy noCopy
	v      int
}

// Add adds delta to the counter. If the counter goes negative, Add
// panics.
func (wg *WaitGroup) Add(delta int) {
	wg.v += delta
	if wg.v < 0 {
		panic("async: negative WaitGroup counter")
	}
}

// Done decrements the counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait returns a condition that passes once the counter is zero.
func (wg *WaitGroup) Wait() Cond {
	return func() bool { return wg.v == 0 }
}
