// Package chflow provides context-aware helpers for waiting on Go channels.
package chflow

import "context"

// Wait blocks until done is closed or ctx ends. It returns nil when done is
// closed, even if ctx has ended as well, and ctx.Err() otherwise.
func Wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	default:
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
