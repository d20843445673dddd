// Package user implements the users resource: full CRUD over an owned collection.
package user

import (
	"context"
	"errors"
)

// User represents an account in the system.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateRequest is the body of POST /users/create.
type CreateRequest struct {
	Name *string `json:"name" validate:"required"`
}

// UpdateRequest is the body of PUT /users/{id}/update.
type UpdateRequest struct {
	Name *string `json:"name" validate:"required"`
}

// Repository defines behavior for storing users.
type Repository interface {
	Create(ctx context.Context, name string) (User, error)
	Get(ctx context.Context, id int) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, id int, name string) (User, error)
	// Delete removes every user with id. A missing id is not an error.
	Delete(ctx context.Context, id int) error
}

// ErrNotFound indicates the requested user does not exist.
var ErrNotFound = errors.New("user not found")

// Seed is the collection every users service starts with.
func Seed() []User {
	return []User{
		{ID: 1, Name: "Tyson"},
		{ID: 2, Name: "Rocky"},
	}
}
