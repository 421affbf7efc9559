// Package workers runs independent units of work on a bounded pool.
//
// The upload pipeline submits one Worker per file; a failing worker never
// stops its siblings.
package workers

import "context"

// Worker is one independent unit of work.
//
// Example implementation:
//
//	type sealOne struct{ item models.UploadItem }
//
//	func (w *sealOne) Run(ctx context.Context) error {
//	    // seal, store, persist
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a plain function to the Worker interface.
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
