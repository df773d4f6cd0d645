// Package catalog implements the catalog orchestrators
package catalog

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/pkg/idgen"
	catalogrepo "github.com/KirkDiggler/madking-api/internal/repositories/catalog"
	"github.com/KirkDiggler/madking-api/internal/services/catalog"
)

// Config holds the dependencies for a catalog orchestrator
type Config[T entities.CatalogEntry] struct {
	Kind        entities.CatalogKind
	Repository  catalogrepo.Repository[T]
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config[T]) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Kind == "" {
		vb.RequiredField("Kind")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements catalog.Service for one kind of entry
type Orchestrator[T entities.CatalogEntry] struct {
	kind        entities.CatalogKind
	repo        catalogrepo.Repository[T]
	idGenerator idgen.Generator
}

// New creates a new catalog orchestrator
func New[T entities.CatalogEntry](cfg *Config[T]) (*Orchestrator[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator[T]{
		kind:        cfg.Kind,
		repo:        cfg.Repository,
		idGenerator: cfg.IDGenerator,
	}, nil
}

var (
	_ catalog.Service[*entities.Race]  = (*Orchestrator[*entities.Race])(nil)
	_ catalog.Service[*entities.Spell] = (*Orchestrator[*entities.Spell])(nil)
)

// List returns entries sorted by name
func (o *Orchestrator[T]) List(ctx context.Context, input *catalog.ListInput) (*catalog.ListOutput[T], error) {
	if input == nil {
		input = &catalog.ListInput{}
	}

	out, err := o.repo.List(ctx, catalogrepo.ListInput{NamePrefix: input.NamePrefix})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s entries", o.kind)
	}

	return &catalog.ListOutput[T]{Entries: out.Entries}, nil
}

// Get returns a single entry
func (o *Orchestrator[T]) Get(ctx context.Context, input *catalog.GetInput) (*catalog.GetOutput[T], error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgumentf("%s ID is required", o.kind)
	}

	out, err := o.repo.Get(ctx, catalogrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s %s", o.kind, input.ID)
	}

	return &catalog.GetOutput[T]{Entry: out.Entry}, nil
}

// Create normalizes and stores a new entry
func (o *Orchestrator[T]) Create(ctx context.Context, input *catalog.CreateInput[T]) (*catalog.CreateOutput[T], error) {
	if input == nil || isNil(input.Entry) {
		return nil, errors.InvalidArgumentf("%s is required", o.kind)
	}

	entry := input.Entry
	if entry.GetID() == "" {
		entry.SetID(o.idGenerator.Generate())
	}
	entry.Normalize()

	out, err := o.repo.Create(ctx, catalogrepo.CreateInput[T]{Entry: entry})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", o.kind)
	}

	slog.InfoContext(ctx, "catalog entry created",
		"kind", o.kind,
		"id", out.Entry.GetID(),
		"name", out.Entry.GetName())

	return &catalog.CreateOutput[T]{Entry: out.Entry}, nil
}

// Update replaces an entry. The id in the input wins over the entry's own.
func (o *Orchestrator[T]) Update(ctx context.Context, input *catalog.UpdateInput[T]) (*catalog.UpdateOutput[T], error) {
	if input == nil || isNil(input.Entry) {
		return nil, errors.InvalidArgumentf("%s is required", o.kind)
	}
	if input.ID == "" {
		return nil, errors.InvalidArgumentf("%s ID is required", o.kind)
	}

	entry := input.Entry
	entry.SetID(input.ID)
	entry.Normalize()

	out, err := o.repo.Update(ctx, catalogrepo.UpdateInput[T]{Entry: entry})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update %s %s", o.kind, input.ID)
	}

	return &catalog.UpdateOutput[T]{Entry: out.Entry}, nil
}

// Delete removes an entry. Characters still pointing at it are left alone
// and will fail to resolve.
func (o *Orchestrator[T]) Delete(ctx context.Context, input *catalog.DeleteInput) (*catalog.DeleteOutput[T], error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgumentf("%s ID is required", o.kind)
	}

	out, err := o.repo.Delete(ctx, catalogrepo.DeleteInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s %s", o.kind, input.ID)
	}

	slog.InfoContext(ctx, "catalog entry deleted",
		"kind", o.kind,
		"id", input.ID)

	return &catalog.DeleteOutput[T]{Entry: out.Entry}, nil
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
