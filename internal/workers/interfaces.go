// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's background goroutine and returns immediately.
// Stop cancels that goroutine and blocks until it has fully exited; it is
// safe to call on a worker that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
