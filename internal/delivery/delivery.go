// Package delivery defines the entry points through which the outside world
// reaches the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Each implementation is
// collected into the deliveries group and started by the application entry
// point.
type Delivery interface {
	Serve(ctx context.Context) error
}
