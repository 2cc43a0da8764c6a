// Package workers provides the application's background jobs.
// It defines the Worker interface and a Workers aggregate that starts
// every configured worker in a unified way.
package workers

import "context"

// Worker is the interface implemented by every background job.
//
// Run starts the worker and blocks until ctx is cancelled. Callers are
// expected to invoke it in its own goroutine.
type Worker interface {
	Run(ctx context.Context)
}
