// Package memory implements an in-memory user repository.
package memory

import (
	"context"
	"slices"
	"sync"

	"storefront/pkg/user"
)

// Repository keeps users in insertion order. Ids come from a counter that only
// moves forward, so a deleted id is never handed out again.
type Repository struct {
	mu     sync.RWMutex
	users  []user.User
	nextID int
}

// New creates a repository holding seed. The counter starts after the highest
// seeded id.
func New(seed []user.User) *Repository {
	next := 1
	for _, u := range seed {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return &Repository{users: slices.Clone(seed), nextID: next}
}

// Create appends a user with the next id.
func (r *Repository) Create(ctx context.Context, name string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := user.User{ID: r.nextID, Name: name}
	r.nextID++
	r.users = append(r.users, u)
	return u, nil
}

// Get returns the first user with id.
func (r *Repository) Get(ctx context.Context, id int) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(id); i >= 0 {
		return r.users[i], nil
	}
	return user.User{}, user.ErrNotFound
}

// List returns a copy of all users.
func (r *Repository) List(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// Update replaces the name of the user with id in place.
func (r *Repository) Update(ctx context.Context, id int, name string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return user.User{}, user.ErrNotFound
	}
	r.users[i].Name = name
	return r.users[i], nil
}

// Delete removes all users with id.
func (r *Repository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = slices.DeleteFunc(r.users, func(u user.User) bool { return u.ID == id })
	return nil
}

func (r *Repository) index(id int) int {
	return slices.IndexFunc(r.users, func(u user.User) bool { return u.ID == id })
}
