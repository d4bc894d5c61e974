package async

// Mutex provides mutual exclusion between coroutines driven on the
// same thread. Lock is an await condition; a contending coroutine
// reports Blocked to its driver and re-polls on the next invocation.
// The mutex does not record which coroutine holds it.
type Mutex struct {
	noCopy noCopy
	held   bool
}

// Lock returns a condition that acquires the mutex once it is free.
func (m *Mutex) Lock() Cond {
	return m.TryLock
}

// TryLock acquires the mutex if it is free and reports whether it
// did.
func (m *Mutex) TryLock() bool {
	if m.held {
		return false
	}
	m.held = true
	return true
}

// Unlock releases the mutex. It panics if the mutex is not held.
func (m *Mutex) Unlock() {
	if !m.held {
		panic("async: unlock of unlocked Mutex")
	}
	m.held = false
}
