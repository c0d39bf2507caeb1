// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a long-running entrypoint (HTTP server, worker, ...). Serve
// blocks until the delivery stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
