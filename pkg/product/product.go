// Package product implements the read-only products catalog.
package product

import "context"

// Product represents a catalog item.
type Product struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Repository defines read access to the catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
}

// Seed is the fixed catalog served by every products service.
func Seed() []Product {
	return []Product{
		{ID: 1, Name: "Boxing gloves"},
		{ID: 2, Name: "Training shoes"},
	}
}
