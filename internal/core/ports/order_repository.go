package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository reads sales orders with their pickings and persists the
// changes job lifecycle operations make to them.
type OrderRepository interface {
	// Get returns the order with its pickings. It returns an error wrapping
	// errs.ErrObjectNotFound when the order does not exist or is not visible
	// to the acting user.
	Get(ctx context.Context, id kernel.ObjectID) (*order.Order, error)

	// Update persists the order state and the state and assignee of its pickings.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetAllWithPickings returns every order having at least one picking,
	// newest first.
	GetAllWithPickings(ctx context.Context) ([]*order.Order, error)
}
