package entities

// Sheet is a character together with every catalog entry it references,
// resolved from storage. The engine only ever reads resolved sheets.
type Sheet struct {
	Character *Character
	Race      *Race
	Class     *Class
	Origin    *Origin
	// Items is keyed by item id and may hold entries beyond the inventory
	Items  map[string]*Item
	Spells []*Spell
}

// Item looks up a resolved item
func (s *Sheet) Item(id string) (*Item, bool) {
	item, ok := s.Items[id]
	return item, ok && item != nil
}

// MissingItems lists equipped item ids that are not resolved yet
func (s *Sheet) MissingItems() []string {
	var missing []string
	for _, id := range s.Character.EquippedSlots.ItemIDs() {
		if _, ok := s.Item(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// WithCharacter returns a shallow copy of the sheet around another
// character value
func (s *Sheet) WithCharacter(c *Character) *Sheet {
	out := *s
	out.Character = c
	return &out
}

// Background is a randomly generated narrative seed drawn from an origin
type Background struct {
	OriginID         string       `json:"originId"`
	PersonalityTrait string       `json:"personalityTrait"`
	Ideal            *Ideal       `json:"ideal,omitempty"`
	Bond             string       `json:"bond"`
	Flaw             string       `json:"flaw"`
	Motivation       string       `json:"motivation"`
	StartingWealth   int          `json:"startingWealth"`
	Connections      []Connection `json:"connections"`
}
