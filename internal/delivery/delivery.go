// Package delivery defines the contract every transport entrypoint
// implements.
package delivery

import "context"

// Delivery is a serving transport (HTTP, worker, ...). Serve blocks
// until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
