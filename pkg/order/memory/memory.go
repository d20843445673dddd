// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"sync"

	"storefront/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
type Repository struct {
	mu     sync.RWMutex
	orders []order.Order
	nextID int
}

// New creates an empty repository. The first order gets id 1.
func New() *Repository {
	return &Repository{nextID: 1}
}

// Create stores a new order under the next id.
func (r *Repository) Create(ctx context.Context, productID, quantity int) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := order.Order{ID: r.nextID, ProductID: productID, Quantity: quantity}
	r.nextID++
	r.orders = append(r.orders, o)
	return o, nil
}

// List returns all orders in creation order.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
