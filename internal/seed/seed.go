// Package seed loads catalog fixtures from YAML into the catalog services.
// Entries with an id are upserted so a file can be applied repeatedly.
package seed

import (
	"context"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/services/catalog"
)

// File is the layout of a seed document
type File struct {
	Items   []*entities.Item   `yaml:"items"`
	Spells  []*entities.Spell  `yaml:"spells"`
	Races   []*entities.Race   `yaml:"races"`
	Classes []*entities.Class  `yaml:"classes"`
	Origins []*entities.Origin `yaml:"origins"`
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	file := &File{}
	if err := dec.Decode(file); err != nil {
		if errors.Is(err, io.EOF) {
			return file, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse seed file")
	}
	return file, nil
}

// ReadFile opens and parses the seed document at path
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to open seed file")
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Config holds the dependencies for a Loader
type Config struct {
	RaceService   catalog.Service[*entities.Race]
	ClassService  catalog.Service[*entities.Class]
	OriginService catalog.Service[*entities.Origin]
	ItemService   catalog.Service[*entities.Item]
	SpellService  catalog.Service[*entities.Spell]
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RaceService == nil {
		vb.RequiredField("RaceService")
	}
	if c.ClassService == nil {
		vb.RequiredField("ClassService")
	}
	if c.OriginService == nil {
		vb.RequiredField("OriginService")
	}
	if c.ItemService == nil {
		vb.RequiredField("ItemService")
	}
	if c.SpellService == nil {
		vb.RequiredField("SpellService")
	}

	return vb.Build()
}

// Loader applies seed files through the catalog services so the usual
// normalization and validation run
type Loader struct {
	races   catalog.Service[*entities.Race]
	classes catalog.Service[*entities.Class]
	origins catalog.Service[*entities.Origin]
	items   catalog.Service[*entities.Item]
	spells  catalog.Service[*entities.Spell]
}

// New creates a Loader
func New(cfg *Config) (*Loader, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Loader{
		races:   cfg.RaceService,
		classes: cfg.ClassService,
		origins: cfg.OriginService,
		items:   cfg.ItemService,
		spells:  cfg.SpellService,
	}, nil
}

// Counts tallies what a load did for one kind
type Counts struct {
	Created int
	Updated int
}

// Result reports the outcome of a load, keyed by kind
type Result map[entities.CatalogKind]Counts

// Load applies every entry in the file. It stops at the first failure;
// entries stored before it stay stored.
func (l *Loader) Load(ctx context.Context, file *File) (Result, error) {
	if file == nil {
		return nil, errors.InvalidArgument("seed file is required")
	}

	result := Result{}
	steps := []func() error{
		func() error { return apply(ctx, l.items, entities.KindItem, file.Items, result) },
		func() error { return apply(ctx, l.spells, entities.KindSpell, file.Spells, result) },
		func() error { return apply(ctx, l.races, entities.KindRace, file.Races, result) },
		func() error { return apply(ctx, l.classes, entities.KindClass, file.Classes, result) },
		func() error { return apply(ctx, l.origins, entities.KindOrigin, file.Origins, result) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return result, err
		}
	}

	return result, nil
}

func apply[T entities.CatalogEntry](ctx context.Context, svc catalog.Service[T], kind entities.CatalogKind, entries []T, result Result) error {
	counts := result[kind]
	defer func() { result[kind] = counts }()

	var zero T
	for i, entry := range entries {
		if any(entry) == any(zero) {
			return errors.InvalidArgumentf("%s %d is empty", kind, i)
		}
		created, err := upsert(ctx, svc, entry)
		if err != nil {
			return errors.Wrapf(err, "%s %d (%s)", kind, i, entry.GetName())
		}
		if created {
			counts.Created++
		} else {
			counts.Updated++
		}

		slog.DebugContext(ctx, "seeded catalog entry",
			"kind", kind,
			"id", entry.GetID(),
			"created", created)
	}

	return nil
}

func upsert[T entities.CatalogEntry](ctx context.Context, svc catalog.Service[T], entry T) (bool, error) {
	if id := entry.GetID(); id != "" {
		_, err := svc.Get(ctx, &catalog.GetInput{ID: id})
		switch {
		case err == nil:
			if _, err := svc.Update(ctx, &catalog.UpdateInput[T]{ID: id, Entry: entry}); err != nil {
				return false, err
			}
			return false, nil
		case !errors.IsNotFound(err):
			return false, err
		}
	}

	if _, err := svc.Create(ctx, &catalog.CreateInput[T]{Entry: entry}); err != nil {
		return false, err
	}
	return true, nil
}
