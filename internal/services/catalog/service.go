// Package catalog defines the interfaces for catalog operations
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/madking-api/internal/services/catalog Service,BackgroundService

import (
	"context"

	"github.com/KirkDiggler/madking-api/internal/entities"
)

// Service manages one kind of catalog entry
type Service[T entities.CatalogEntry] interface {
	List(ctx context.Context, input *ListInput) (*ListOutput[T], error)
	Get(ctx context.Context, input *GetInput) (*GetOutput[T], error)
	Create(ctx context.Context, input *CreateInput[T]) (*CreateOutput[T], error)
	Update(ctx context.Context, input *UpdateInput[T]) (*UpdateOutput[T], error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput[T], error)
}

// BackgroundService rolls character backgrounds from origins
type BackgroundService interface {
	GenerateBackground(ctx context.Context, input *GenerateBackgroundInput) (*GenerateBackgroundOutput, error)
}

// ListInput defines the request for listing entries
type ListInput struct {
	NamePrefix string // Optional filter
}

// ListOutput defines the response for listing entries
type ListOutput[T entities.CatalogEntry] struct {
	Entries []T
}

// GetInput defines the request for getting an entry
type GetInput struct {
	ID string
}

// GetOutput defines the response for getting an entry
type GetOutput[T entities.CatalogEntry] struct {
	Entry T
}

// CreateInput defines the request for creating an entry. An empty ID is
// generated.
type CreateInput[T entities.CatalogEntry] struct {
	Entry T
}

// CreateOutput defines the response for creating an entry
type CreateOutput[T entities.CatalogEntry] struct {
	Entry T
}

// UpdateInput defines the request for replacing an entry
type UpdateInput[T entities.CatalogEntry] struct {
	ID    string
	Entry T
}

// UpdateOutput defines the response for replacing an entry
type UpdateOutput[T entities.CatalogEntry] struct {
	Entry T
}

// DeleteInput defines the request for deleting an entry
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the response for deleting an entry
type DeleteOutput[T entities.CatalogEntry] struct {
	Entry T
}

// GenerateBackgroundInput defines the request for rolling a background
type GenerateBackgroundInput struct {
	OriginID string
}

// GenerateBackgroundOutput defines the response for rolling a background
type GenerateBackgroundOutput struct {
	Background *entities.Background
}
