// Package catalog provides persistence for the reference collections
// characters point at: races, classes, origins, items and spells
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/madking-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/madking-api/internal/entities"
)

// Repository stores one kind of catalog entry. Names are unique per kind,
// compared case-insensitively.
type Repository[T entities.CatalogEntry] interface {
	// Create stores a new entry
	// Returns errors.InvalidArgument (VALIDATION) for invariant failures
	// Returns errors.AlreadyExists (DUPLICATE_KEY) for id or name collisions
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput[T]) (*CreateOutput[T], error)

	// Get retrieves an entry by ID
	// Returns errors.NotFound if the entry doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput[T], error)

	// GetMany retrieves entries by ID. Unknown IDs are left out of the
	// result rather than failing the call.
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput[T], error)

	// Update replaces an existing entry
	// Returns errors.NotFound if the entry doesn't exist
	// Returns errors.AlreadyExists (DUPLICATE_KEY) if the new name is taken
	Update(ctx context.Context, input UpdateInput[T]) (*UpdateOutput[T], error)

	// Delete removes an entry and returns what was stored
	// Returns errors.NotFound if the entry doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput[T], error)

	// List returns entries sorted by name
	List(ctx context.Context, input ListInput) (*ListOutput[T], error)
}

// CreateInput defines the input for creating an entry
type CreateInput[T entities.CatalogEntry] struct {
	Entry T
}

// CreateOutput defines the output for creating an entry
type CreateOutput[T entities.CatalogEntry] struct {
	Entry T
}

// GetInput defines the input for getting an entry
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an entry
type GetOutput[T entities.CatalogEntry] struct {
	Entry T
}

// GetManyInput defines the input for getting several entries
type GetManyInput struct {
	IDs []string
}

// GetManyOutput defines the output for getting several entries
type GetManyOutput[T entities.CatalogEntry] struct {
	Entries map[string]T
}

// UpdateInput defines the input for updating an entry
type UpdateInput[T entities.CatalogEntry] struct {
	Entry T
}

// UpdateOutput defines the output for updating an entry
type UpdateOutput[T entities.CatalogEntry] struct {
	Entry T
}

// DeleteInput defines the input for deleting an entry
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an entry
type DeleteOutput[T entities.CatalogEntry] struct {
	Entry T
}

// ListInput defines the input for listing entries
type ListInput struct {
	// NamePrefix filters by case-insensitive name prefix when set
	NamePrefix string
}

// ListOutput defines the output for listing entries
type ListOutput[T entities.CatalogEntry] struct {
	Entries []T
}
