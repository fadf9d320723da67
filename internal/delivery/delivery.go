package delivery

import (
	"context"
)

// Delivery is an outer surface that drives the use cases until ctx ends or the user leaves.
type Delivery interface {
	Serve(ctx context.Context) error
}
