package panel

import "time"

// Timer is a pending fire-once callback.
type Timer interface {
	// Stop cancels the callback. It reports false if the timer already fired
	// or was stopped.
	Stop() bool
}

// Scheduler creates deferred callbacks. Implementations must run the
// callback on the goroutine that owns the Machine.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}
