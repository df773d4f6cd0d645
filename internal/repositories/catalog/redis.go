package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"
	"sort"
	"strings"

	"github.com/KirkDiggler/madking-api/internal/entities"
	"github.com/KirkDiggler/madking-api/internal/errors"
	"github.com/KirkDiggler/madking-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/madking-api/internal/redis"
)

const (
	// Error messages
	errEntryNil     = "entry cannot be nil"
	errEntryIDEmpty = "entry ID cannot be empty"
)

type redisRepository[T entities.CatalogEntry] struct {
	client redisclient.Client
	clock  clock.Clock
	kind   entities.CatalogKind
}

// RedisConfig contains configuration for a Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	Kind   entities.CatalogKind
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("client")
	}
	errors.ValidateRequired("kind", string(cfg.Kind), vb)
	return vb.Build()
}

// NewRedis creates a Redis-backed repository for one catalog kind
func NewRedis[T entities.CatalogEntry](cfg *RedisConfig) (Repository[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository[T]{
		client: cfg.Client,
		clock:  c,
		kind:   cfg.Kind,
	}, nil
}

// NewRaces creates the race repository
func NewRaces(cfg RedisConfig) (Repository[*entities.Race], error) {
	cfg.Kind = entities.KindRace
	return NewRedis[*entities.Race](&cfg)
}

// NewClasses creates the class repository
func NewClasses(cfg RedisConfig) (Repository[*entities.Class], error) {
	cfg.Kind = entities.KindClass
	return NewRedis[*entities.Class](&cfg)
}

// NewOrigins creates the origin repository
func NewOrigins(cfg RedisConfig) (Repository[*entities.Origin], error) {
	cfg.Kind = entities.KindOrigin
	return NewRedis[*entities.Origin](&cfg)
}

// NewItems creates the item repository
func NewItems(cfg RedisConfig) (Repository[*entities.Item], error) {
	cfg.Kind = entities.KindItem
	return NewRedis[*entities.Item](&cfg)
}

// NewSpells creates the spell repository
func NewSpells(cfg RedisConfig) (Repository[*entities.Spell], error) {
	cfg.Kind = entities.KindSpell
	return NewRedis[*entities.Spell](&cfg)
}

// entryKey is kind:id, e.g. "race:race_123"
func (r *redisRepository[T]) entryKey(id string) string {
	return string(r.kind) + ":" + id
}

// indexKey is the set of all ids of this kind
func (r *redisRepository[T]) indexKey() string {
	return string(r.kind) + ":index"
}

// namesKey is a hash of lowercased name to id
func (r *redisRepository[T]) namesKey() string {
	return string(r.kind) + ":names"
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *redisRepository[T]) checkEntry(entry T) error {
	if v := reflect.ValueOf(entry); !v.IsValid() || v.IsNil() {
		return errors.InvalidArgument(errEntryNil)
	}
	if entry.GetID() == "" {
		return errors.InvalidArgument(errEntryIDEmpty)
	}
	return entry.Validate()
}

// nameOwner returns the id holding a name, or "" when the name is free
func (r *redisRepository[T]) nameOwner(ctx context.Context, name string) (string, error) {
	id, err := r.client.HGet(ctx, r.namesKey(), nameKey(name)).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "failed to check %s name", r.kind)
	}
	return id, nil
}

func (r *redisRepository[T]) duplicateName(name string) error {
	return errors.AlreadyExistsf("%s named %q already exists", r.kind, name).
		WithMeta("field", "name").
		WithMeta("kind", string(r.kind))
}

func (r *redisRepository[T]) Create(ctx context.Context, input CreateInput[T]) (*CreateOutput[T], error) {
	if err := r.checkEntry(input.Entry); err != nil {
		return nil, err
	}
	entry := input.Entry
	id := entry.GetID()

	exists, err := r.client.Exists(ctx, r.entryKey(id)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("%s with ID %s already exists", r.kind, id).
			WithMeta("field", "id")
	}

	owner, err := r.nameOwner(ctx, entry.GetName())
	if err != nil {
		return nil, err
	}
	if owner != "" {
		return nil, r.duplicateName(entry.GetName())
	}

	now := r.clock.Now()
	created, _ := entry.Timestamps()
	if created.IsZero() {
		created = now
	}
	entry.SetTimestamps(created, now)
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s", r.kind)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.entryKey(id), string(data), 0)
	pipe.SAdd(ctx, r.indexKey(), id)
	pipe.HSet(ctx, r.namesKey(), nameKey(entry.GetName()), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", r.kind)
	}

	slog.DebugContext(ctx, "created catalog entry",
		"kind", r.kind,
		"id", id,
		"name", entry.GetName())

	return &CreateOutput[T]{Entry: entry}, nil
}

func (r *redisRepository[T]) Get(ctx context.Context, input GetInput) (*GetOutput[T], error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}

	result, err := r.client.Get(ctx, r.entryKey(input.ID)).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("%s with ID %s not found", r.kind, input.ID).
				WithMeta("kind", string(r.kind)).
				WithMeta("id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get %s", r.kind)
	}

	entry, err := r.decode(result)
	if err != nil {
		return nil, err
	}
	return &GetOutput[T]{Entry: entry}, nil
}

func (r *redisRepository[T]) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput[T], error) {
	entries := make(map[string]T, len(input.IDs))
	if len(input.IDs) == 0 {
		return &GetManyOutput[T]{Entries: entries}, nil
	}

	keys := make([]string, len(input.IDs))
	for i, id := range input.IDs {
		keys[i] = r.entryKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s entries", r.kind)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		entry, err := r.decode(raw)
		if err != nil {
			return nil, err
		}
		entries[input.IDs[i]] = entry
	}

	slog.DebugContext(ctx, "resolved catalog entries",
		"kind", r.kind,
		"requested", len(input.IDs),
		"found", len(entries))

	return &GetManyOutput[T]{Entries: entries}, nil
}

func (r *redisRepository[T]) Update(ctx context.Context, input UpdateInput[T]) (*UpdateOutput[T], error) {
	if err := r.checkEntry(input.Entry); err != nil {
		return nil, err
	}
	entry := input.Entry
	id := entry.GetID()

	existing, err := r.Get(ctx, GetInput{ID: id})
	if err != nil {
		return nil, err
	}

	oldName := nameKey(existing.Entry.GetName())
	newName := nameKey(entry.GetName())
	if oldName != newName {
		owner, err := r.nameOwner(ctx, entry.GetName())
		if err != nil {
			return nil, err
		}
		if owner != "" && owner != id {
			return nil, r.duplicateName(entry.GetName())
		}
	}

	// Creation time is owned by the store
	created, _ := existing.Entry.Timestamps()
	entry.SetTimestamps(created, r.clock.Now())

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %s", r.kind)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.entryKey(id), string(data), 0)
	if oldName != newName {
		pipe.HDel(ctx, r.namesKey(), oldName)
		pipe.HSet(ctx, r.namesKey(), newName, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update %s", r.kind)
	}

	return &UpdateOutput[T]{Entry: entry}, nil
}

func (r *redisRepository[T]) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput[T], error) {
	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, r.entryKey(input.ID))
	pipe.SRem(ctx, r.indexKey(), input.ID)
	pipe.HDel(ctx, r.namesKey(), nameKey(existing.Entry.GetName()))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s", r.kind)
	}

	return &DeleteOutput[T]{Entry: existing.Entry}, nil
}

func (r *redisRepository[T]) List(ctx context.Context, input ListInput) (*ListOutput[T], error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s index", r.kind)
	}

	found, err := r.GetMany(ctx, GetManyInput{IDs: ids})
	if err != nil {
		return nil, err
	}

	prefix := nameKey(input.NamePrefix)
	entries := make([]T, 0, len(found.Entries))
	for _, entry := range found.Entries {
		if prefix != "" && !strings.HasPrefix(nameKey(entry.GetName()), prefix) {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return nameKey(entries[i].GetName()) < nameKey(entries[j].GetName())
	})

	if stale := len(ids) - len(found.Entries); stale > 0 {
		slog.WarnContext(ctx, "catalog index references missing entries",
			"kind", r.kind,
			"count", stale)
	}

	return &ListOutput[T]{Entries: entries}, nil
}

func (r *redisRepository[T]) decode(raw string) (T, error) {
	var entry T
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return entry, errors.Wrapf(err, "failed to unmarshal %s", r.kind)
	}
	return entry, nil
}
