package ports

// InstanceLock guarantees a single running overlay.
// Acquire returns domain.ErrAlreadyRunning when another process holds the lock.
type InstanceLock interface {
	Acquire() error
	Release() error
}
