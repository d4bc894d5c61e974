package async

// noCopy is a type that prevents copying of values that embed it. It
// implements sync.Locker so go vet's copylocks check flags copies.
// Records and the synchronization primitives carry borrowed pointers
// and in-flight progress, so a copy is a contract violation.
type noCopy struct{}

// Lock is a no-op implementation of sync.Locker.Lock.
func (*noCopy) Lock() {}

// Unlock is a no-op implementation of sync.Locker.Unlock.
func (*noCopy) Unlock() {}
