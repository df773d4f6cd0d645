package entities

import "time"

// CatalogKind names one of the reference collections characters point at
type CatalogKind string

// Catalog kinds
const (
	KindRace   CatalogKind = "race"
	KindClass  CatalogKind = "class"
	KindOrigin CatalogKind = "origin"
	KindItem   CatalogKind = "item"
	KindSpell  CatalogKind = "spell"
)

// CatalogEntry is implemented by every catalog document. Names are unique
// within a kind.
type CatalogEntry interface {
	GetID() string
	SetID(id string)
	GetName() string
	Timestamps() (created, updated time.Time)
	SetTimestamps(created, updated time.Time)
	Normalize()
	Validate() error
}

var (
	_ CatalogEntry = (*Race)(nil)
	_ CatalogEntry = (*Class)(nil)
	_ CatalogEntry = (*Origin)(nil)
	_ CatalogEntry = (*Item)(nil)
	_ CatalogEntry = (*Spell)(nil)
)

func (r *Race) GetID() string { return r.ID }
func (r *Race) SetID(id string) { r.ID = id }
func (r *Race) GetName() string { return r.Name }
func (c *Class) GetID() string { return c.ID }
func (c *Class) SetID(id string) { c.ID = id }
func (c *Class) GetName() string { return c.Name }
func (o *Origin) GetID() string { return o.ID }
func (o *Origin) SetID(id string) { o.ID = id }
func (o *Origin) GetName() string { return o.Name }
func (i *Item) GetID() string { return i.ID }
func (i *Item) SetID(id string) { i.ID = id }
func (i *Item) GetName() string { return i.Name }
func (s *Spell) GetID() string { return s.ID }
func (s *Spell) SetID(id string) { s.ID = id }
func (s *Spell) GetName() string { return s.Name }

func (r *Race) Timestamps() (time.Time, time.Time) { return r.CreatedAt, r.UpdatedAt }
func (r *Race) SetTimestamps(created, updated time.Time) {
	r.CreatedAt, r.UpdatedAt = created, updated
}

func (c *Class) Timestamps() (time.Time, time.Time) { return c.CreatedAt, c.UpdatedAt }
func (c *Class) SetTimestamps(created, updated time.Time) {
	c.CreatedAt, c.UpdatedAt = created, updated
}

func (o *Origin) Timestamps() (time.Time, time.Time) { return o.CreatedAt, o.UpdatedAt }
func (o *Origin) SetTimestamps(created, updated time.Time) {
	o.CreatedAt, o.UpdatedAt = created, updated
}

func (i *Item) Timestamps() (time.Time, time.Time) { return i.CreatedAt, i.UpdatedAt }
func (i *Item) SetTimestamps(created, updated time.Time) {
	i.CreatedAt, i.UpdatedAt = created, updated
}

func (s *Spell) Timestamps() (time.Time, time.Time) { return s.CreatedAt, s.UpdatedAt }
func (s *Spell) SetTimestamps(created, updated time.Time) {
	s.CreatedAt, s.UpdatedAt = created, updated
}
