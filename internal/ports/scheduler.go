package ports

import "time"

// Handle is a live periodic or one-shot source
type Handle interface {
	// Cancel stops the source. No callback runs after Cancel returns.
	// Cancelling twice is a no-op.
	Cancel()
}

// Scheduler runs callbacks on the owning event loop.
// Callbacks never run concurrently with each other or with the caller.
type Scheduler interface {
	// Every invokes fn every interval until the handle is cancelled
	Every(interval time.Duration, fn func()) Handle

	// After invokes fn once after delay unless the handle is cancelled first
	After(delay time.Duration, fn func()) Handle
}
