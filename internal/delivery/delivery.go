// Package delivery defines the inbound transport abstractions.
package delivery

import "context"

// Delivery is a server that accepts requests until its context is canceled.
type Delivery interface {
	Serve(ctx context.Context) error
}
