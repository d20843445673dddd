// Package memory implements an in-memory, immutable product catalog.
package memory

import (
	"context"
	"slices"

	"storefront/pkg/product"
)

// Repository serves a catalog fixed at construction. It has no mutators, so
// no lock is needed.
type Repository struct {
	products []product.Product
}

// New creates a repository holding a private copy of products.
func New(products []product.Product) *Repository {
	return &Repository{products: slices.Clone(products)}
}

// List returns a copy of the catalog.
func (r *Repository) List(ctx context.Context) ([]product.Product, error) {
	out := make([]product.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}
