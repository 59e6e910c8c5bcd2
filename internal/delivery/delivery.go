// Package delivery defines the contract for inbound transports.
package delivery

import "context"

// Delivery is implemented by every inbound server (HTTP, gRPC, ...). Serve
// blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
