// Package order implements the orders resource.
package order

import "context"

// Order represents a customer purchase order. ProductID is not checked
// against the products catalog.
type Order struct {
	ID        int `json:"id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// CreateRequest is the body of POST /orders/create.
type CreateRequest struct {
	ProductID *int `json:"product_id" validate:"required"`
	Quantity  *int `json:"quantity" validate:"required"`
}

// Repository defines behavior for storing orders.
type Repository interface {
	Create(ctx context.Context, productID, quantity int) (Order, error)
	List(ctx context.Context) ([]Order, error)
}
