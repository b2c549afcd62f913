package delivery

import "context"

// Delivery is a long-running inbound surface started by the application once fx has wired it.
type Delivery interface {
	Serve(ctx context.Context) error
}
