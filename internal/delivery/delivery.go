// Package delivery defines the contract every inbound transport of the
// application fulfills, so the composition root can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the
// server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
